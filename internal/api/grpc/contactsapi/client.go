package contactsapi

import (
	"context"

	"google.golang.org/grpc"
)

// Client calls both services over one connection using the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any](ctx context.Context, c *Client, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListContacts(ctx context.Context, in *ListContactsRequest, opts ...grpc.CallOption) (*ListContactsResponse, error) {
	return invoke[ListContactsResponse](ctx, c, Contacts_ListContacts_FullMethodName, in, opts)
}

func (c *Client) GetContact(ctx context.Context, in *GetContactRequest, opts ...grpc.CallOption) (*ContactResponse, error) {
	return invoke[ContactResponse](ctx, c, Contacts_GetContact_FullMethodName, in, opts)
}

func (c *Client) CreateContact(ctx context.Context, in *CreateContactRequest, opts ...grpc.CallOption) (*ContactResponse, error) {
	return invoke[ContactResponse](ctx, c, Contacts_CreateContact_FullMethodName, in, opts)
}

func (c *Client) UpdateContact(ctx context.Context, in *UpdateContactRequest, opts ...grpc.CallOption) (*ContactResponse, error) {
	return invoke[ContactResponse](ctx, c, Contacts_UpdateContact_FullMethodName, in, opts)
}

func (c *Client) DeleteContact(ctx context.Context, in *DeleteContactRequest, opts ...grpc.CallOption) (*ContactResponse, error) {
	return invoke[ContactResponse](ctx, c, Contacts_DeleteContact_FullMethodName, in, opts)
}

func (c *Client) ToggleFavorite(ctx context.Context, in *ToggleFavoriteRequest, opts ...grpc.CallOption) (*ContactResponse, error) {
	return invoke[ContactResponse](ctx, c, Contacts_ToggleFavorite_FullMethodName, in, opts)
}

func (c *Client) GetOverview(ctx context.Context, in *GetOverviewRequest, opts ...grpc.CallOption) (*OverviewResponse, error) {
	return invoke[OverviewResponse](ctx, c, Contacts_GetOverview_FullMethodName, in, opts)
}

func (c *Client) UploadAttachment(ctx context.Context, in *UploadAttachmentRequest, opts ...grpc.CallOption) (*UploadAttachmentResponse, error) {
	return invoke[UploadAttachmentResponse](ctx, c, Contacts_UploadAttachment_FullMethodName, in, opts)
}

func (c *Client) DownloadAttachment(ctx context.Context, in *DownloadAttachmentRequest, opts ...grpc.CallOption) (*DownloadAttachmentResponse, error) {
	return invoke[DownloadAttachmentResponse](ctx, c, Contacts_DownloadAttachment_FullMethodName, in, opts)
}

func (c *Client) DeleteAttachment(ctx context.Context, in *DeleteAttachmentRequest, opts ...grpc.CallOption) (*ContactResponse, error) {
	return invoke[ContactResponse](ctx, c, Contacts_DeleteAttachment_FullMethodName, in, opts)
}

func (c *Client) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	return invoke[ListCategoriesResponse](ctx, c, Categories_ListCategories_FullMethodName, in, opts)
}

func (c *Client) GetCategory(ctx context.Context, in *GetCategoryRequest, opts ...grpc.CallOption) (*CategoryResponse, error) {
	return invoke[CategoryResponse](ctx, c, Categories_GetCategory_FullMethodName, in, opts)
}

func (c *Client) CreateCategory(ctx context.Context, in *CreateCategoryRequest, opts ...grpc.CallOption) (*CategoryResponse, error) {
	return invoke[CategoryResponse](ctx, c, Categories_CreateCategory_FullMethodName, in, opts)
}

func (c *Client) UpdateCategory(ctx context.Context, in *UpdateCategoryRequest, opts ...grpc.CallOption) (*CategoryResponse, error) {
	return invoke[CategoryResponse](ctx, c, Categories_UpdateCategory_FullMethodName, in, opts)
}

func (c *Client) DeleteCategory(ctx context.Context, in *DeleteCategoryRequest, opts ...grpc.CallOption) (*CategoryResponse, error) {
	return invoke[CategoryResponse](ctx, c, Categories_DeleteCategory_FullMethodName, in, opts)
}
