// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: resumes/v1/resumes.proto

package resumesv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Actor struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Actor) Reset() {
	*x = Actor{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Actor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Actor) ProtoMessage() {}

func (x *Actor) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Actor.ProtoReflect.Descriptor instead.
func (*Actor) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{0}
}

func (x *Actor) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Actor) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type HistoryEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,2,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	UpdatedBy     *Actor                 `protobuf:"bytes,3,opt,name=updated_by,json=updatedBy,proto3" json:"updated_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HistoryEntry) Reset() {
	*x = HistoryEntry{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HistoryEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HistoryEntry) ProtoMessage() {}

func (x *HistoryEntry) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HistoryEntry.ProtoReflect.Descriptor instead.
func (*HistoryEntry) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{1}
}

func (x *HistoryEntry) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *HistoryEntry) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *HistoryEntry) GetUpdatedBy() *Actor {
	if x != nil {
		return x.UpdatedBy
	}
	return nil
}

type Resume struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Url           string                 `protobuf:"bytes,2,opt,name=url,proto3" json:"url,omitempty"`
	CompanyId     string                 `protobuf:"bytes,3,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	JobId         string                 `protobuf:"bytes,4,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Email         string                 `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	UserId        string                 `protobuf:"bytes,6,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	CreatedBy     *Actor                 `protobuf:"bytes,8,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	UpdatedBy     *Actor                 `protobuf:"bytes,9,opt,name=updated_by,json=updatedBy,proto3" json:"updated_by,omitempty"`  // unset until the first transition
	DeletedBy     *Actor                 `protobuf:"bytes,10,opt,name=deleted_by,json=deletedBy,proto3" json:"deleted_by,omitempty"` // unset until soft delete
	IsDeleted     bool                   `protobuf:"varint,11,opt,name=is_deleted,json=isDeleted,proto3" json:"is_deleted,omitempty"`
	History       []*HistoryEntry        `protobuf:"bytes,12,rep,name=history,proto3" json:"history,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt     string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Resume) Reset() {
	*x = Resume{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Resume) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Resume) ProtoMessage() {}

func (x *Resume) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Resume.ProtoReflect.Descriptor instead.
func (*Resume) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{2}
}

func (x *Resume) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Resume) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *Resume) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *Resume) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *Resume) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Resume) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Resume) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Resume) GetCreatedBy() *Actor {
	if x != nil {
		return x.CreatedBy
	}
	return nil
}

func (x *Resume) GetUpdatedBy() *Actor {
	if x != nil {
		return x.UpdatedBy
	}
	return nil
}

func (x *Resume) GetDeletedBy() *Actor {
	if x != nil {
		return x.DeletedBy
	}
	return nil
}

func (x *Resume) GetIsDeleted() bool {
	if x != nil {
		return x.IsDeleted
	}
	return false
}

func (x *Resume) GetHistory() []*HistoryEntry {
	if x != nil {
		return x.History
	}
	return nil
}

func (x *Resume) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Resume) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type PageMeta struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Current       int32                  `protobuf:"varint,1,opt,name=current,proto3" json:"current,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Pages         int32                  `protobuf:"varint,3,opt,name=pages,proto3" json:"pages,omitempty"`
	Total         int32                  `protobuf:"varint,4,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PageMeta) Reset() {
	*x = PageMeta{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PageMeta) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PageMeta) ProtoMessage() {}

func (x *PageMeta) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PageMeta.ProtoReflect.Descriptor instead.
func (*PageMeta) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{3}
}

func (x *PageMeta) GetCurrent() int32 {
	if x != nil {
		return x.Current
	}
	return 0
}

func (x *PageMeta) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *PageMeta) GetPages() int32 {
	if x != nil {
		return x.Pages
	}
	return 0
}

func (x *PageMeta) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type CreateResumeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Url           string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	CompanyId     string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	JobId         string                 `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Email         string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	UserId        string                 `protobuf:"bytes,5,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ActorId       string                 `protobuf:"bytes,6,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	ActorEmail    string                 `protobuf:"bytes,7,opt,name=actor_email,json=actorEmail,proto3" json:"actor_email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateResumeRequest) Reset() {
	*x = CreateResumeRequest{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateResumeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateResumeRequest) ProtoMessage() {}

func (x *CreateResumeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateResumeRequest.ProtoReflect.Descriptor instead.
func (*CreateResumeRequest) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{4}
}

func (x *CreateResumeRequest) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *CreateResumeRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *CreateResumeRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *CreateResumeRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateResumeRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CreateResumeRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *CreateResumeRequest) GetActorEmail() string {
	if x != nil {
		return x.ActorEmail
	}
	return ""
}

type CreateResumeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,2,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateResumeResponse) Reset() {
	*x = CreateResumeResponse{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateResumeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateResumeResponse) ProtoMessage() {}

func (x *CreateResumeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateResumeResponse.ProtoReflect.Descriptor instead.
func (*CreateResumeResponse) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{5}
}

func (x *CreateResumeResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CreateResumeResponse) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GetResumeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetResumeRequest) Reset() {
	*x = GetResumeRequest{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetResumeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetResumeRequest) ProtoMessage() {}

func (x *GetResumeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetResumeRequest.ProtoReflect.Descriptor instead.
func (*GetResumeRequest) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{6}
}

func (x *GetResumeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetResumeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Resume        *Resume                `protobuf:"bytes,1,opt,name=resume,proto3" json:"resume,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetResumeResponse) Reset() {
	*x = GetResumeResponse{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetResumeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetResumeResponse) ProtoMessage() {}

func (x *GetResumeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetResumeResponse.ProtoReflect.Descriptor instead.
func (*GetResumeResponse) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{7}
}

func (x *GetResumeResponse) GetResume() *Resume {
	if x != nil {
		return x.Resume
	}
	return nil
}

type ListResumesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CurrentPage   int32                  `protobuf:"varint,1,opt,name=current_page,json=currentPage,proto3" json:"current_page,omitempty"` // 1-based; 0 means first page
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`          // 0 means default (10)
	Filter        string                 `protobuf:"bytes,3,opt,name=filter,proto3" json:"filter,omitempty"`                               // JSON document, see service schema
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResumesRequest) Reset() {
	*x = ListResumesRequest{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResumesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResumesRequest) ProtoMessage() {}

func (x *ListResumesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResumesRequest.ProtoReflect.Descriptor instead.
func (*ListResumesRequest) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{8}
}

func (x *ListResumesRequest) GetCurrentPage() int32 {
	if x != nil {
		return x.CurrentPage
	}
	return 0
}

func (x *ListResumesRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListResumesRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

type ListResumesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Meta          *PageMeta              `protobuf:"bytes,1,opt,name=meta,proto3" json:"meta,omitempty"`
	Results       []*Resume              `protobuf:"bytes,2,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResumesResponse) Reset() {
	*x = ListResumesResponse{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResumesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResumesResponse) ProtoMessage() {}

func (x *ListResumesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResumesResponse.ProtoReflect.Descriptor instead.
func (*ListResumesResponse) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{9}
}

func (x *ListResumesResponse) GetMeta() *PageMeta {
	if x != nil {
		return x.Meta
	}
	return nil
}

func (x *ListResumesResponse) GetResults() []*Resume {
	if x != nil {
		return x.Results
	}
	return nil
}

type ListResumesForUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResumesForUserRequest) Reset() {
	*x = ListResumesForUserRequest{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResumesForUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResumesForUserRequest) ProtoMessage() {}

func (x *ListResumesForUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResumesForUserRequest.ProtoReflect.Descriptor instead.
func (*ListResumesForUserRequest) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{10}
}

func (x *ListResumesForUserRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ListResumesForUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Resumes       []*Resume              `protobuf:"bytes,1,rep,name=resumes,proto3" json:"resumes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResumesForUserResponse) Reset() {
	*x = ListResumesForUserResponse{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResumesForUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResumesForUserResponse) ProtoMessage() {}

func (x *ListResumesForUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResumesForUserResponse.ProtoReflect.Descriptor instead.
func (*ListResumesForUserResponse) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{11}
}

func (x *ListResumesForUserResponse) GetResumes() []*Resume {
	if x != nil {
		return x.Resumes
	}
	return nil
}

type TransitionStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	ActorId       string                 `protobuf:"bytes,3,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	ActorEmail    string                 `protobuf:"bytes,4,opt,name=actor_email,json=actorEmail,proto3" json:"actor_email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransitionStatusRequest) Reset() {
	*x = TransitionStatusRequest{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransitionStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransitionStatusRequest) ProtoMessage() {}

func (x *TransitionStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransitionStatusRequest.ProtoReflect.Descriptor instead.
func (*TransitionStatusRequest) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{12}
}

func (x *TransitionStatusRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *TransitionStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *TransitionStatusRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *TransitionStatusRequest) GetActorEmail() string {
	if x != nil {
		return x.ActorEmail
	}
	return ""
}

type TransitionStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,3,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransitionStatusResponse) Reset() {
	*x = TransitionStatusResponse{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransitionStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransitionStatusResponse) ProtoMessage() {}

func (x *TransitionStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransitionStatusResponse.ProtoReflect.Descriptor instead.
func (*TransitionStatusResponse) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{13}
}

func (x *TransitionStatusResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *TransitionStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *TransitionStatusResponse) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type SoftDeleteResumeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ActorId       string                 `protobuf:"bytes,2,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	ActorEmail    string                 `protobuf:"bytes,3,opt,name=actor_email,json=actorEmail,proto3" json:"actor_email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SoftDeleteResumeRequest) Reset() {
	*x = SoftDeleteResumeRequest{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SoftDeleteResumeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SoftDeleteResumeRequest) ProtoMessage() {}

func (x *SoftDeleteResumeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SoftDeleteResumeRequest.ProtoReflect.Descriptor instead.
func (*SoftDeleteResumeRequest) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{14}
}

func (x *SoftDeleteResumeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SoftDeleteResumeRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *SoftDeleteResumeRequest) GetActorEmail() string {
	if x != nil {
		return x.ActorEmail
	}
	return ""
}

type SoftDeleteResumeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SoftDeleteResumeResponse) Reset() {
	*x = SoftDeleteResumeResponse{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SoftDeleteResumeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SoftDeleteResumeResponse) ProtoMessage() {}

func (x *SoftDeleteResumeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SoftDeleteResumeResponse.ProtoReflect.Descriptor instead.
func (*SoftDeleteResumeResponse) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{15}
}

type ExportResumesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filter        string                 `protobuf:"bytes,1,opt,name=filter,proto3" json:"filter,omitempty"` // same JSON document as ListResumes
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResumesRequest) Reset() {
	*x = ExportResumesRequest{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResumesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResumesRequest) ProtoMessage() {}

func (x *ExportResumesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResumesRequest.ProtoReflect.Descriptor instead.
func (*ExportResumesRequest) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{16}
}

func (x *ExportResumesRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

type ExportResumesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResumesResponse) Reset() {
	*x = ExportResumesResponse{}
	mi := &file_resumes_v1_resumes_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResumesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResumesResponse) ProtoMessage() {}

func (x *ExportResumesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resumes_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResumesResponse.ProtoReflect.Descriptor instead.
func (*ExportResumesResponse) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resumes_proto_rawDescGZIP(), []int{17}
}

func (x *ExportResumesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_resumes_v1_resumes_proto protoreflect.FileDescriptor

const file_resumes_v1_resumes_proto_rawDesc = "" +
	"\n" +
	"\x18resumes/v1/resumes.proto\x12\n" +
	"resumes.v1\"-\n" +
	"\x05Actor\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\"w\n" +
	"\fHistoryEntry\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x02 \x01(\tR\tupdatedAt\x120\n" +
	"\n" +
	"updated_by\x18\x03 \x01(\v2\x11.resumes.v1.ActorR\tupdatedBy\"\xce\x03\n" +
	"\x06Resume\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x10\n" +
	"\x03url\x18\x02 \x01(\tR\x03url\x12\x1d\n" +
	"\n" +
	"company_id\x18\x03 \x01(\tR\tcompanyId\x12\x15\n" +
	"\x06job_id\x18\x04 \x01(\tR\x05jobId\x12\x14\n" +
	"\x05email\x18\x05 \x01(\tR\x05email\x12\x17\n" +
	"\auser_id\x18\x06 \x01(\tR\x06userId\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x120\n" +
	"\n" +
	"created_by\x18\b \x01(\v2\x11.resumes.v1.ActorR\tcreatedBy\x120\n" +
	"\n" +
	"updated_by\x18\t \x01(\v2\x11.resumes.v1.ActorR\tupdatedBy\x120\n" +
	"\n" +
	"deleted_by\x18\n" +
	" \x01(\v2\x11.resumes.v1.ActorR\tdeletedBy\x12\x1d\n" +
	"\n" +
	"is_deleted\x18\v \x01(\bR\tisDeleted\x122\n" +
	"\ahistory\x18\f \x03(\v2\x18.resumes.v1.HistoryEntryR\ahistory\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"m\n" +
	"\bPageMeta\x12\x18\n" +
	"\acurrent\x18\x01 \x01(\x05R\acurrent\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12\x14\n" +
	"\x05pages\x18\x03 \x01(\x05R\x05pages\x12\x14\n" +
	"\x05total\x18\x04 \x01(\x05R\x05total\"\xc8\x01\n" +
	"\x13CreateResumeRequest\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\x12\x15\n" +
	"\x06job_id\x18\x03 \x01(\tR\x05jobId\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x12\x17\n" +
	"\auser_id\x18\x05 \x01(\tR\x06userId\x12\x19\n" +
	"\bactor_id\x18\x06 \x01(\tR\aactorId\x12\x1f\n" +
	"\vactor_email\x18\a \x01(\tR\n" +
	"actorEmail\"E\n" +
	"\x14CreateResumeResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"created_at\x18\x02 \x01(\tR\tcreatedAt\"\"\n" +
	"\x10GetResumeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"?\n" +
	"\x11GetResumeResponse\x12*\n" +
	"\x06resume\x18\x01 \x01(\v2\x12.resumes.v1.ResumeR\x06resume\"l\n" +
	"\x12ListResumesRequest\x12!\n" +
	"\fcurrent_page\x18\x01 \x01(\x05R\vcurrentPage\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12\x16\n" +
	"\x06filter\x18\x03 \x01(\tR\x06filter\"m\n" +
	"\x13ListResumesResponse\x12(\n" +
	"\x04meta\x18\x01 \x01(\v2\x14.resumes.v1.PageMetaR\x04meta\x12,\n" +
	"\aresults\x18\x02 \x03(\v2\x12.resumes.v1.ResumeR\aresults\"4\n" +
	"\x19ListResumesForUserRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"J\n" +
	"\x1aListResumesForUserResponse\x12,\n" +
	"\aresumes\x18\x01 \x03(\v2\x12.resumes.v1.ResumeR\aresumes\"}\n" +
	"\x17TransitionStatusRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x19\n" +
	"\bactor_id\x18\x03 \x01(\tR\aactorId\x12\x1f\n" +
	"\vactor_email\x18\x04 \x01(\tR\n" +
	"actorEmail\"a\n" +
	"\x18TransitionStatusResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x03 \x01(\tR\tupdatedAt\"e\n" +
	"\x17SoftDeleteResumeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bactor_id\x18\x02 \x01(\tR\aactorId\x12\x1f\n" +
	"\vactor_email\x18\x03 \x01(\tR\n" +
	"actorEmail\"\x1a\n" +
	"\x18SoftDeleteResumeResponse\".\n" +
	"\x14ExportResumesRequest\x12\x16\n" +
	"\x06filter\x18\x01 \x01(\tR\x06filter\"+\n" +
	"\x15ExportResumesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xf5\x04\n" +
	"\rResumeService\x12Q\n" +
	"\fCreateResume\x12\x1f.resumes.v1.CreateResumeRequest\x1a .resumes.v1.CreateResumeResponse\x12H\n" +
	"\tGetResume\x12\x1c.resumes.v1.GetResumeRequest\x1a\x1d.resumes.v1.GetResumeResponse\x12N\n" +
	"\vListResumes\x12\x1e.resumes.v1.ListResumesRequest\x1a\x1f.resumes.v1.ListResumesResponse\x12c\n" +
	"\x12ListResumesForUser\x12%.resumes.v1.ListResumesForUserRequest\x1a&.resumes.v1.ListResumesForUserResponse\x12]\n" +
	"\x10TransitionStatus\x12#.resumes.v1.TransitionStatusRequest\x1a$.resumes.v1.TransitionStatusResponse\x12]\n" +
	"\x10SoftDeleteResume\x12#.resumes.v1.SoftDeleteResumeRequest\x1a$.resumes.v1.SoftDeleteResumeResponse\x12T\n" +
	"\rExportResumes\x12 .resumes.v1.ExportResumesRequest\x1a!.resumes.v1.ExportResumesResponseBHZFgithub.com/haidangnguyen/resume-tracker/gen/proto/resumes/v1;resumesv1b\x06proto3"

var (
	file_resumes_v1_resumes_proto_rawDescOnce sync.Once
	file_resumes_v1_resumes_proto_rawDescData []byte
)

func file_resumes_v1_resumes_proto_rawDescGZIP() []byte {
	file_resumes_v1_resumes_proto_rawDescOnce.Do(func() {
		file_resumes_v1_resumes_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_resumes_v1_resumes_proto_rawDesc), len(file_resumes_v1_resumes_proto_rawDesc)))
	})
	return file_resumes_v1_resumes_proto_rawDescData
}

var file_resumes_v1_resumes_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_resumes_v1_resumes_proto_goTypes = []any{
	(*Actor)(nil),                      // 0: resumes.v1.Actor
	(*HistoryEntry)(nil),               // 1: resumes.v1.HistoryEntry
	(*Resume)(nil),                     // 2: resumes.v1.Resume
	(*PageMeta)(nil),                   // 3: resumes.v1.PageMeta
	(*CreateResumeRequest)(nil),        // 4: resumes.v1.CreateResumeRequest
	(*CreateResumeResponse)(nil),       // 5: resumes.v1.CreateResumeResponse
	(*GetResumeRequest)(nil),           // 6: resumes.v1.GetResumeRequest
	(*GetResumeResponse)(nil),          // 7: resumes.v1.GetResumeResponse
	(*ListResumesRequest)(nil),         // 8: resumes.v1.ListResumesRequest
	(*ListResumesResponse)(nil),        // 9: resumes.v1.ListResumesResponse
	(*ListResumesForUserRequest)(nil),  // 10: resumes.v1.ListResumesForUserRequest
	(*ListResumesForUserResponse)(nil), // 11: resumes.v1.ListResumesForUserResponse
	(*TransitionStatusRequest)(nil),    // 12: resumes.v1.TransitionStatusRequest
	(*TransitionStatusResponse)(nil),   // 13: resumes.v1.TransitionStatusResponse
	(*SoftDeleteResumeRequest)(nil),    // 14: resumes.v1.SoftDeleteResumeRequest
	(*SoftDeleteResumeResponse)(nil),   // 15: resumes.v1.SoftDeleteResumeResponse
	(*ExportResumesRequest)(nil),       // 16: resumes.v1.ExportResumesRequest
	(*ExportResumesResponse)(nil),      // 17: resumes.v1.ExportResumesResponse
}
var file_resumes_v1_resumes_proto_depIdxs = []int32{
	0,  // 0: resumes.v1.HistoryEntry.updated_by:type_name -> resumes.v1.Actor
	0,  // 1: resumes.v1.Resume.created_by:type_name -> resumes.v1.Actor
	0,  // 2: resumes.v1.Resume.updated_by:type_name -> resumes.v1.Actor
	0,  // 3: resumes.v1.Resume.deleted_by:type_name -> resumes.v1.Actor
	1,  // 4: resumes.v1.Resume.history:type_name -> resumes.v1.HistoryEntry
	2,  // 5: resumes.v1.GetResumeResponse.resume:type_name -> resumes.v1.Resume
	3,  // 6: resumes.v1.ListResumesResponse.meta:type_name -> resumes.v1.PageMeta
	2,  // 7: resumes.v1.ListResumesResponse.results:type_name -> resumes.v1.Resume
	2,  // 8: resumes.v1.ListResumesForUserResponse.resumes:type_name -> resumes.v1.Resume
	4,  // 9: resumes.v1.ResumeService.CreateResume:input_type -> resumes.v1.CreateResumeRequest
	6,  // 10: resumes.v1.ResumeService.GetResume:input_type -> resumes.v1.GetResumeRequest
	8,  // 11: resumes.v1.ResumeService.ListResumes:input_type -> resumes.v1.ListResumesRequest
	10, // 12: resumes.v1.ResumeService.ListResumesForUser:input_type -> resumes.v1.ListResumesForUserRequest
	12, // 13: resumes.v1.ResumeService.TransitionStatus:input_type -> resumes.v1.TransitionStatusRequest
	14, // 14: resumes.v1.ResumeService.SoftDeleteResume:input_type -> resumes.v1.SoftDeleteResumeRequest
	16, // 15: resumes.v1.ResumeService.ExportResumes:input_type -> resumes.v1.ExportResumesRequest
	5,  // 16: resumes.v1.ResumeService.CreateResume:output_type -> resumes.v1.CreateResumeResponse
	7,  // 17: resumes.v1.ResumeService.GetResume:output_type -> resumes.v1.GetResumeResponse
	9,  // 18: resumes.v1.ResumeService.ListResumes:output_type -> resumes.v1.ListResumesResponse
	11, // 19: resumes.v1.ResumeService.ListResumesForUser:output_type -> resumes.v1.ListResumesForUserResponse
	13, // 20: resumes.v1.ResumeService.TransitionStatus:output_type -> resumes.v1.TransitionStatusResponse
	15, // 21: resumes.v1.ResumeService.SoftDeleteResume:output_type -> resumes.v1.SoftDeleteResumeResponse
	17, // 22: resumes.v1.ResumeService.ExportResumes:output_type -> resumes.v1.ExportResumesResponse
	16, // [16:23] is the sub-list for method output_type
	9,  // [9:16] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_resumes_v1_resumes_proto_init() }
func file_resumes_v1_resumes_proto_init() {
	if File_resumes_v1_resumes_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_resumes_v1_resumes_proto_rawDesc), len(file_resumes_v1_resumes_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_resumes_v1_resumes_proto_goTypes,
		DependencyIndexes: file_resumes_v1_resumes_proto_depIdxs,
		MessageInfos:      file_resumes_v1_resumes_proto_msgTypes,
	}.Build()
	File_resumes_v1_resumes_proto = out.File
	file_resumes_v1_resumes_proto_goTypes = nil
	file_resumes_v1_resumes_proto_depIdxs = nil
}
