package contactsapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ContactsServiceName   = "contacts.v1.Contacts"
	CategoriesServiceName = "contacts.v1.Categories"
)

const (
	Contacts_ListContacts_FullMethodName       = "/contacts.v1.Contacts/ListContacts"
	Contacts_GetContact_FullMethodName         = "/contacts.v1.Contacts/GetContact"
	Contacts_CreateContact_FullMethodName      = "/contacts.v1.Contacts/CreateContact"
	Contacts_UpdateContact_FullMethodName      = "/contacts.v1.Contacts/UpdateContact"
	Contacts_DeleteContact_FullMethodName      = "/contacts.v1.Contacts/DeleteContact"
	Contacts_ToggleFavorite_FullMethodName     = "/contacts.v1.Contacts/ToggleFavorite"
	Contacts_GetOverview_FullMethodName        = "/contacts.v1.Contacts/GetOverview"
	Contacts_UploadAttachment_FullMethodName   = "/contacts.v1.Contacts/UploadAttachment"
	Contacts_DownloadAttachment_FullMethodName = "/contacts.v1.Contacts/DownloadAttachment"
	Contacts_DeleteAttachment_FullMethodName   = "/contacts.v1.Contacts/DeleteAttachment"

	Categories_ListCategories_FullMethodName = "/contacts.v1.Categories/ListCategories"
	Categories_GetCategory_FullMethodName    = "/contacts.v1.Categories/GetCategory"
	Categories_CreateCategory_FullMethodName = "/contacts.v1.Categories/CreateCategory"
	Categories_UpdateCategory_FullMethodName = "/contacts.v1.Categories/UpdateCategory"
	Categories_DeleteCategory_FullMethodName = "/contacts.v1.Categories/DeleteCategory"
)

// ContactsServer is the server API for the contacts.v1.Contacts service.
type ContactsServer interface {
	ListContacts(context.Context, *ListContactsRequest) (*ListContactsResponse, error)
	GetContact(context.Context, *GetContactRequest) (*ContactResponse, error)
	CreateContact(context.Context, *CreateContactRequest) (*ContactResponse, error)
	UpdateContact(context.Context, *UpdateContactRequest) (*ContactResponse, error)
	DeleteContact(context.Context, *DeleteContactRequest) (*ContactResponse, error)
	ToggleFavorite(context.Context, *ToggleFavoriteRequest) (*ContactResponse, error)
	GetOverview(context.Context, *GetOverviewRequest) (*OverviewResponse, error)
	UploadAttachment(context.Context, *UploadAttachmentRequest) (*UploadAttachmentResponse, error)
	DownloadAttachment(context.Context, *DownloadAttachmentRequest) (*DownloadAttachmentResponse, error)
	DeleteAttachment(context.Context, *DeleteAttachmentRequest) (*ContactResponse, error)
}

// CategoriesServer is the server API for the contacts.v1.Categories service.
type CategoriesServer interface {
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	GetCategory(context.Context, *GetCategoryRequest) (*CategoryResponse, error)
	CreateCategory(context.Context, *CreateCategoryRequest) (*CategoryResponse, error)
	UpdateCategory(context.Context, *UpdateCategoryRequest) (*CategoryResponse, error)
	DeleteCategory(context.Context, *DeleteCategoryRequest) (*CategoryResponse, error)
}

// UnimplementedContactsServer can be embedded to have forward compatible implementations.
type UnimplementedContactsServer struct{}

func (UnimplementedContactsServer) ListContacts(context.Context, *ListContactsRequest) (*ListContactsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListContacts not implemented")
}
func (UnimplementedContactsServer) GetContact(context.Context, *GetContactRequest) (*ContactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetContact not implemented")
}
func (UnimplementedContactsServer) CreateContact(context.Context, *CreateContactRequest) (*ContactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateContact not implemented")
}
func (UnimplementedContactsServer) UpdateContact(context.Context, *UpdateContactRequest) (*ContactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateContact not implemented")
}
func (UnimplementedContactsServer) DeleteContact(context.Context, *DeleteContactRequest) (*ContactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteContact not implemented")
}
func (UnimplementedContactsServer) ToggleFavorite(context.Context, *ToggleFavoriteRequest) (*ContactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleFavorite not implemented")
}
func (UnimplementedContactsServer) GetOverview(context.Context, *GetOverviewRequest) (*OverviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOverview not implemented")
}
func (UnimplementedContactsServer) UploadAttachment(context.Context, *UploadAttachmentRequest) (*UploadAttachmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UploadAttachment not implemented")
}
func (UnimplementedContactsServer) DownloadAttachment(context.Context, *DownloadAttachmentRequest) (*DownloadAttachmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DownloadAttachment not implemented")
}
func (UnimplementedContactsServer) DeleteAttachment(context.Context, *DeleteAttachmentRequest) (*ContactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteAttachment not implemented")
}

// UnimplementedCategoriesServer can be embedded to have forward compatible implementations.
type UnimplementedCategoriesServer struct{}

func (UnimplementedCategoriesServer) ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCategories not implemented")
}
func (UnimplementedCategoriesServer) GetCategory(context.Context, *GetCategoryRequest) (*CategoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCategory not implemented")
}
func (UnimplementedCategoriesServer) CreateCategory(context.Context, *CreateCategoryRequest) (*CategoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCategory not implemented")
}
func (UnimplementedCategoriesServer) UpdateCategory(context.Context, *UpdateCategoryRequest) (*CategoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateCategory not implemented")
}
func (UnimplementedCategoriesServer) DeleteCategory(context.Context, *DeleteCategoryRequest) (*CategoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCategory not implemented")
}

// unary adapts a typed method to grpc.MethodHandler, decoding the request and
// running it through the server's interceptor chain.
func unary[S, Req, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Contacts_ServiceDesc is the grpc.ServiceDesc for the contacts.v1.Contacts service.
var Contacts_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ContactsServiceName,
	HandlerType: (*ContactsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListContacts", Handler: unary(Contacts_ListContacts_FullMethodName, ContactsServer.ListContacts)},
		{MethodName: "GetContact", Handler: unary(Contacts_GetContact_FullMethodName, ContactsServer.GetContact)},
		{MethodName: "CreateContact", Handler: unary(Contacts_CreateContact_FullMethodName, ContactsServer.CreateContact)},
		{MethodName: "UpdateContact", Handler: unary(Contacts_UpdateContact_FullMethodName, ContactsServer.UpdateContact)},
		{MethodName: "DeleteContact", Handler: unary(Contacts_DeleteContact_FullMethodName, ContactsServer.DeleteContact)},
		{MethodName: "ToggleFavorite", Handler: unary(Contacts_ToggleFavorite_FullMethodName, ContactsServer.ToggleFavorite)},
		{MethodName: "GetOverview", Handler: unary(Contacts_GetOverview_FullMethodName, ContactsServer.GetOverview)},
		{MethodName: "UploadAttachment", Handler: unary(Contacts_UploadAttachment_FullMethodName, ContactsServer.UploadAttachment)},
		{MethodName: "DownloadAttachment", Handler: unary(Contacts_DownloadAttachment_FullMethodName, ContactsServer.DownloadAttachment)},
		{MethodName: "DeleteAttachment", Handler: unary(Contacts_DeleteAttachment_FullMethodName, ContactsServer.DeleteAttachment)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contacts/v1/contacts.json",
}

// Categories_ServiceDesc is the grpc.ServiceDesc for the contacts.v1.Categories service.
var Categories_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CategoriesServiceName,
	HandlerType: (*CategoriesServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListCategories", Handler: unary(Categories_ListCategories_FullMethodName, CategoriesServer.ListCategories)},
		{MethodName: "GetCategory", Handler: unary(Categories_GetCategory_FullMethodName, CategoriesServer.GetCategory)},
		{MethodName: "CreateCategory", Handler: unary(Categories_CreateCategory_FullMethodName, CategoriesServer.CreateCategory)},
		{MethodName: "UpdateCategory", Handler: unary(Categories_UpdateCategory_FullMethodName, CategoriesServer.UpdateCategory)},
		{MethodName: "DeleteCategory", Handler: unary(Categories_DeleteCategory_FullMethodName, CategoriesServer.DeleteCategory)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contacts/v1/categories.json",
}

func RegisterContactsServer(s grpc.ServiceRegistrar, srv ContactsServer) {
	s.RegisterService(&Contacts_ServiceDesc, srv)
}

func RegisterCategoriesServer(s grpc.ServiceRegistrar, srv CategoriesServer) {
	s.RegisterService(&Categories_ServiceDesc, srv)
}
