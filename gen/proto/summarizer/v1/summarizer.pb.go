// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: summarizer/v1/summarizer.proto

package summarizerpb

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

type SearchDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Year          string                 `protobuf:"bytes,3,opt,name=year,proto3" json:"year,omitempty"`
	Author        string                 `protobuf:"bytes,4,opt,name=author,proto3" json:"author,omitempty"`
	Journal       string                 `protobuf:"bytes,5,opt,name=journal,proto3" json:"journal,omitempty"`
	Limit         int32                  `protobuf:"varint,6,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchDocumentsRequest) Reset() {
	*x = SearchDocumentsRequest{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchDocumentsRequest) ProtoMessage() {}

func (x *SearchDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchDocumentsRequest.ProtoReflect.Descriptor instead.
func (*SearchDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{0}
}

func (x *SearchDocumentsRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *SearchDocumentsRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *SearchDocumentsRequest) GetYear() string {
	if x != nil {
		return x.Year
	}
	return ""
}

func (x *SearchDocumentsRequest) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *SearchDocumentsRequest) GetJournal() string {
	if x != nil {
		return x.Journal
	}
	return ""
}

func (x *SearchDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type SearchDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchDocumentsResponse) Reset() {
	*x = SearchDocumentsResponse{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchDocumentsResponse) ProtoMessage() {}

func (x *SearchDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchDocumentsResponse.ProtoReflect.Descriptor instead.
func (*SearchDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{1}
}

func (x *SearchDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{2}
}

func (x *GetDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Keywords      []*Keyword             `protobuf:"bytes,2,rep,name=keywords,proto3" json:"keywords,omitempty"`
	Scores        []*CategoryScore       `protobuf:"bytes,3,rep,name=scores,proto3" json:"scores,omitempty"`
	Findings      []*KeyFinding          `protobuf:"bytes,4,rep,name=findings,proto3" json:"findings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{3}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetDocumentResponse) GetKeywords() []*Keyword {
	if x != nil {
		return x.Keywords
	}
	return nil
}

func (x *GetDocumentResponse) GetScores() []*CategoryScore {
	if x != nil {
		return x.Scores
	}
	return nil
}

func (x *GetDocumentResponse) GetFindings() []*KeyFinding {
	if x != nil {
		return x.Findings
	}
	return nil
}

type GetStatisticsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatisticsRequest) Reset() {
	*x = GetStatisticsRequest{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatisticsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatisticsRequest) ProtoMessage() {}

func (x *GetStatisticsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatisticsRequest.ProtoReflect.Descriptor instead.
func (*GetStatisticsRequest) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{4}
}

type GetStatisticsResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TotalDocuments int32                  `protobuf:"varint,1,opt,name=total_documents,json=totalDocuments,proto3" json:"total_documents,omitempty"`
	AvgWordCount   float64                `protobuf:"fixed64,2,opt,name=avg_word_count,json=avgWordCount,proto3" json:"avg_word_count,omitempty"`
	ByCategory     []*CategoryCount       `protobuf:"bytes,3,rep,name=by_category,json=byCategory,proto3" json:"by_category,omitempty"`
	ByYear         []*YearCount           `protobuf:"bytes,4,rep,name=by_year,json=byYear,proto3" json:"by_year,omitempty"`
	TopJournals    []*JournalCount        `protobuf:"bytes,5,rep,name=top_journals,json=topJournals,proto3" json:"top_journals,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetStatisticsResponse) Reset() {
	*x = GetStatisticsResponse{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatisticsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatisticsResponse) ProtoMessage() {}

func (x *GetStatisticsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatisticsResponse.ProtoReflect.Descriptor instead.
func (*GetStatisticsResponse) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{5}
}

func (x *GetStatisticsResponse) GetTotalDocuments() int32 {
	if x != nil {
		return x.TotalDocuments
	}
	return 0
}

func (x *GetStatisticsResponse) GetAvgWordCount() float64 {
	if x != nil {
		return x.AvgWordCount
	}
	return 0
}

func (x *GetStatisticsResponse) GetByCategory() []*CategoryCount {
	if x != nil {
		return x.ByCategory
	}
	return nil
}

func (x *GetStatisticsResponse) GetByYear() []*YearCount {
	if x != nil {
		return x.ByYear
	}
	return nil
}

func (x *GetStatisticsResponse) GetTopJournals() []*JournalCount {
	if x != nil {
		return x.TopJournals
	}
	return nil
}

type ExportDocumentsRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Filter        *SearchDocumentsRequest `protobuf:"bytes,1,opt,name=filter,proto3" json:"filter,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{6}
}

func (x *ExportDocumentsRequest) GetFilter() *SearchDocumentsRequest {
	if x != nil {
		return x.Filter
	}
	return nil
}

type ExportDocumentsResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Xlsx              []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	SuggestedFilename string                 `protobuf:"bytes,2,opt,name=suggested_filename,json=suggestedFilename,proto3" json:"suggested_filename,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{7}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportDocumentsResponse) GetSuggestedFilename() string {
	if x != nil {
		return x.SuggestedFilename
	}
	return ""
}

type Document struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SourceFile      string                 `protobuf:"bytes,2,opt,name=source_file,json=sourceFile,proto3" json:"source_file,omitempty"`
	Title           string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Authors         string                 `protobuf:"bytes,4,opt,name=authors,proto3" json:"authors,omitempty"`
	YearPublished   string                 `protobuf:"bytes,5,opt,name=year_published,json=yearPublished,proto3" json:"year_published,omitempty"`
	Journal         string                 `protobuf:"bytes,6,opt,name=journal,proto3" json:"journal,omitempty"`
	DocType         string                 `protobuf:"bytes,7,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	PrimaryCategory string                 `protobuf:"bytes,8,opt,name=primary_category,json=primaryCategory,proto3" json:"primary_category,omitempty"`
	SummaryKind     string                 `protobuf:"bytes,9,opt,name=summary_kind,json=summaryKind,proto3" json:"summary_kind,omitempty"`
	DerivedName     string                 `protobuf:"bytes,10,opt,name=derived_name,json=derivedName,proto3" json:"derived_name,omitempty"`
	WordCount       int32                  `protobuf:"varint,11,opt,name=word_count,json=wordCount,proto3" json:"word_count,omitempty"`
	PageCount       int32                  `protobuf:"varint,12,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	ProcessedAt     string                 `protobuf:"bytes,13,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{8}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetSourceFile() string {
	if x != nil {
		return x.SourceFile
	}
	return ""
}

func (x *Document) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Document) GetAuthors() string {
	if x != nil {
		return x.Authors
	}
	return ""
}

func (x *Document) GetYearPublished() string {
	if x != nil {
		return x.YearPublished
	}
	return ""
}

func (x *Document) GetJournal() string {
	if x != nil {
		return x.Journal
	}
	return ""
}

func (x *Document) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *Document) GetPrimaryCategory() string {
	if x != nil {
		return x.PrimaryCategory
	}
	return ""
}

func (x *Document) GetSummaryKind() string {
	if x != nil {
		return x.SummaryKind
	}
	return ""
}

func (x *Document) GetDerivedName() string {
	if x != nil {
		return x.DerivedName
	}
	return ""
}

func (x *Document) GetWordCount() int32 {
	if x != nil {
		return x.WordCount
	}
	return 0
}

func (x *Document) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *Document) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

type Keyword struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Term          string                 `protobuf:"bytes,1,opt,name=term,proto3" json:"term,omitempty"`
	Rank          int32                  `protobuf:"varint,2,opt,name=rank,proto3" json:"rank,omitempty"`
	Source        string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Keyword) Reset() {
	*x = Keyword{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Keyword) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Keyword) ProtoMessage() {}

func (x *Keyword) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Keyword.ProtoReflect.Descriptor instead.
func (*Keyword) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{9}
}

func (x *Keyword) GetTerm() string {
	if x != nil {
		return x.Term
	}
	return ""
}

func (x *Keyword) GetRank() int32 {
	if x != nil {
		return x.Rank
	}
	return 0
}

func (x *Keyword) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type CategoryScore struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Category        string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	ModelScore      float64                `protobuf:"fixed64,2,opt,name=model_score,json=modelScore,proto3" json:"model_score,omitempty"`
	KeywordScore    float64                `protobuf:"fixed64,3,opt,name=keyword_score,json=keywordScore,proto3" json:"keyword_score,omitempty"`
	SimilarityScore float64                `protobuf:"fixed64,4,opt,name=similarity_score,json=similarityScore,proto3" json:"similarity_score,omitempty"`
	FinalScore      float64                `protobuf:"fixed64,5,opt,name=final_score,json=finalScore,proto3" json:"final_score,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CategoryScore) Reset() {
	*x = CategoryScore{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoryScore) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoryScore) ProtoMessage() {}

func (x *CategoryScore) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoryScore.ProtoReflect.Descriptor instead.
func (*CategoryScore) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{10}
}

func (x *CategoryScore) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CategoryScore) GetModelScore() float64 {
	if x != nil {
		return x.ModelScore
	}
	return 0
}

func (x *CategoryScore) GetKeywordScore() float64 {
	if x != nil {
		return x.KeywordScore
	}
	return 0
}

func (x *CategoryScore) GetSimilarityScore() float64 {
	if x != nil {
		return x.SimilarityScore
	}
	return 0
}

func (x *CategoryScore) GetFinalScore() float64 {
	if x != nil {
		return x.FinalScore
	}
	return 0
}

type KeyFinding struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KeyFinding) Reset() {
	*x = KeyFinding{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KeyFinding) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KeyFinding) ProtoMessage() {}

func (x *KeyFinding) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KeyFinding.ProtoReflect.Descriptor instead.
func (*KeyFinding) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{11}
}

func (x *KeyFinding) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *KeyFinding) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type CategoryCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategoryCount) Reset() {
	*x = CategoryCount{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoryCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoryCount) ProtoMessage() {}

func (x *CategoryCount) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoryCount.ProtoReflect.Descriptor instead.
func (*CategoryCount) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{12}
}

func (x *CategoryCount) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CategoryCount) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type YearCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Year          string                 `protobuf:"bytes,1,opt,name=year,proto3" json:"year,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *YearCount) Reset() {
	*x = YearCount{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *YearCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*YearCount) ProtoMessage() {}

func (x *YearCount) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use YearCount.ProtoReflect.Descriptor instead.
func (*YearCount) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{13}
}

func (x *YearCount) GetYear() string {
	if x != nil {
		return x.Year
	}
	return ""
}

func (x *YearCount) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type JournalCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Journal       string                 `protobuf:"bytes,1,opt,name=journal,proto3" json:"journal,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JournalCount) Reset() {
	*x = JournalCount{}
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JournalCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JournalCount) ProtoMessage() {}

func (x *JournalCount) ProtoReflect() protoreflect.Message {
	mi := &file_summarizer_v1_summarizer_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JournalCount.ProtoReflect.Descriptor instead.
func (*JournalCount) Descriptor() ([]byte, []int) {
	return file_summarizer_v1_summarizer_proto_rawDescGZIP(), []int{14}
}

func (x *JournalCount) GetJournal() string {
	if x != nil {
		return x.Journal
	}
	return ""
}

func (x *JournalCount) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

var File_summarizer_v1_summarizer_proto protoreflect.FileDescriptor

const file_summarizer_v1_summarizer_proto_rawDesc = "" +
	"\n" +
	"\x1esummarizer/v1/summarizer.proto\x12\rsummarizer.v1\"\xa6\x01\n" +
	"\x16SearchDocumentsRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x12\n" +
	"\x04year\x18\x03 \x01(\tR\x04year\x12\x16\n" +
	"\x06author\x18\x04 \x01(\tR\x06author\x12\x18\n" +
	"\ajournal\x18\x05 \x01(\tR\ajournal\x12\x14\n" +
	"\x05limit\x18\x06 \x01(\x05R\x05limit\"P\n" +
	"\x17SearchDocumentsResponse\x125\n" +
	"\tdocuments\x18\x01 \x03(\v2\x17.summarizer.v1.DocumentR\tdocuments\"$\n" +
	"\x12GetDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\xeb\x01\n" +
	"\x13GetDocumentResponse\x123\n" +
	"\bdocument\x18\x01 \x01(\v2\x17.summarizer.v1.DocumentR\bdocument\x122\n" +
	"\bkeywords\x18\x02 \x03(\v2\x16.summarizer.v1.KeywordR\bkeywords\x124\n" +
	"\x06scores\x18\x03 \x03(\v2\x1c.summarizer.v1.CategoryScoreR\x06scores\x125\n" +
	"\bfindings\x18\x04 \x03(\v2\x19.summarizer.v1.KeyFindingR\bfindings\"\x16\n" +
	"\x14GetStatisticsRequest\"\x98\x02\n" +
	"\x15GetStatisticsResponse\x12'\n" +
	"\x0ftotal_documents\x18\x01 \x01(\x05R\x0etotalDocuments\x12$\n" +
	"\x0eavg_word_count\x18\x02 \x01(\x01R\favgWordCount\x12=\n" +
	"\vby_category\x18\x03 \x03(\v2\x1c.summarizer.v1.CategoryCountR\n" +
	"byCategory\x121\n" +
	"\aby_year\x18\x04 \x03(\v2\x18.summarizer.v1.YearCountR\x06byYear\x12>\n" +
	"\ftop_journals\x18\x05 \x03(\v2\x1b.summarizer.v1.JournalCountR\vtopJournals\"W\n" +
	"\x16ExportDocumentsRequest\x12=\n" +
	"\x06filter\x18\x01 \x01(\v2%.summarizer.v1.SearchDocumentsRequestR\x06filter\"\\\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12-\n" +
	"\x12suggested_filename\x18\x02 \x01(\tR\x11suggestedFilename\"\x99\x03\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vsource_file\x18\x02 \x01(\tR\n" +
	"sourceFile\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x18\n" +
	"\aauthors\x18\x04 \x01(\tR\aauthors\x12%\n" +
	"\x0eyear_published\x18\x05 \x01(\tR\ryearPublished\x12\x18\n" +
	"\ajournal\x18\x06 \x01(\tR\ajournal\x12\x19\n" +
	"\bdoc_type\x18\a \x01(\tR\adocType\x12)\n" +
	"\x10primary_category\x18\b \x01(\tR\x0fprimaryCategory\x12!\n" +
	"\fsummary_kind\x18\t \x01(\tR\vsummaryKind\x12!\n" +
	"\fderived_name\x18\n" +
	" \x01(\tR\vderivedName\x12\x1d\n" +
	"\n" +
	"word_count\x18\v \x01(\x05R\twordCount\x12\x1d\n" +
	"\n" +
	"page_count\x18\f \x01(\x05R\tpageCount\x12!\n" +
	"\fprocessed_at\x18\r \x01(\tR\vprocessedAt\"I\n" +
	"\aKeyword\x12\x12\n" +
	"\x04term\x18\x01 \x01(\tR\x04term\x12\x12\n" +
	"\x04rank\x18\x02 \x01(\x05R\x04rank\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\"\xbd\x01\n" +
	"\rCategoryScore\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x1f\n" +
	"\vmodel_score\x18\x02 \x01(\x01R\n" +
	"modelScore\x12#\n" +
	"\rkeyword_score\x18\x03 \x01(\x01R\fkeywordScore\x12)\n" +
	"\x10similarity_score\x18\x04 \x01(\x01R\x0fsimilarityScore\x12\x1f\n" +
	"\vfinal_score\x18\x05 \x01(\x01R\n" +
	"finalScore\"B\n" +
	"\n" +
	"KeyFinding\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\"A\n" +
	"\rCategoryCount\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\"5\n" +
	"\tYearCount\x12\x12\n" +
	"\x04year\x18\x01 \x01(\tR\x04year\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\">\n" +
	"\fJournalCount\x12\x18\n" +
	"\ajournal\x18\x01 \x01(\tR\ajournal\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count2\x89\x03\n" +
	"\x11SummarizerService\x12`\n" +
	"\x0fSearchDocuments\x12%.summarizer.v1.SearchDocumentsRequest\x1a&.summarizer.v1.SearchDocumentsResponse\x12T\n" +
	"\vGetDocument\x12!.summarizer.v1.GetDocumentRequest\x1a\".summarizer.v1.GetDocumentResponse\x12Z\n" +
	"\rGetStatistics\x12#.summarizer.v1.GetStatisticsRequest\x1a$.summarizer.v1.GetStatisticsResponse\x12`\n" +
	"\x0fExportDocuments\x12%.summarizer.v1.ExportDocumentsRequest\x1a&.summarizer.v1.ExportDocumentsResponseBIZGgithub.com/jsuh-911/pdf-summarizer/gen/proto/summarizer/v1;summarizerpbb\x06proto3"

var (
	file_summarizer_v1_summarizer_proto_rawDescOnce sync.Once
	file_summarizer_v1_summarizer_proto_rawDescData []byte
)

func file_summarizer_v1_summarizer_proto_rawDescGZIP() []byte {
	file_summarizer_v1_summarizer_proto_rawDescOnce.Do(func() {
		file_summarizer_v1_summarizer_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_summarizer_v1_summarizer_proto_rawDesc), len(file_summarizer_v1_summarizer_proto_rawDesc)))
	})
	return file_summarizer_v1_summarizer_proto_rawDescData
}

var file_summarizer_v1_summarizer_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_summarizer_v1_summarizer_proto_goTypes = []any{
	(*SearchDocumentsRequest)(nil),  // 0: summarizer.v1.SearchDocumentsRequest
	(*SearchDocumentsResponse)(nil), // 1: summarizer.v1.SearchDocumentsResponse
	(*GetDocumentRequest)(nil),      // 2: summarizer.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),     // 3: summarizer.v1.GetDocumentResponse
	(*GetStatisticsRequest)(nil),    // 4: summarizer.v1.GetStatisticsRequest
	(*GetStatisticsResponse)(nil),   // 5: summarizer.v1.GetStatisticsResponse
	(*ExportDocumentsRequest)(nil),  // 6: summarizer.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil), // 7: summarizer.v1.ExportDocumentsResponse
	(*Document)(nil),                // 8: summarizer.v1.Document
	(*Keyword)(nil),                 // 9: summarizer.v1.Keyword
	(*CategoryScore)(nil),           // 10: summarizer.v1.CategoryScore
	(*KeyFinding)(nil),              // 11: summarizer.v1.KeyFinding
	(*CategoryCount)(nil),           // 12: summarizer.v1.CategoryCount
	(*YearCount)(nil),               // 13: summarizer.v1.YearCount
	(*JournalCount)(nil),            // 14: summarizer.v1.JournalCount
}
var file_summarizer_v1_summarizer_proto_depIdxs = []int32{
	8,  // 0: summarizer.v1.SearchDocumentsResponse.documents:type_name -> summarizer.v1.Document
	8,  // 1: summarizer.v1.GetDocumentResponse.document:type_name -> summarizer.v1.Document
	9,  // 2: summarizer.v1.GetDocumentResponse.keywords:type_name -> summarizer.v1.Keyword
	10, // 3: summarizer.v1.GetDocumentResponse.scores:type_name -> summarizer.v1.CategoryScore
	11, // 4: summarizer.v1.GetDocumentResponse.findings:type_name -> summarizer.v1.KeyFinding
	12, // 5: summarizer.v1.GetStatisticsResponse.by_category:type_name -> summarizer.v1.CategoryCount
	13, // 6: summarizer.v1.GetStatisticsResponse.by_year:type_name -> summarizer.v1.YearCount
	14, // 7: summarizer.v1.GetStatisticsResponse.top_journals:type_name -> summarizer.v1.JournalCount
	0,  // 8: summarizer.v1.ExportDocumentsRequest.filter:type_name -> summarizer.v1.SearchDocumentsRequest
	0,  // 9: summarizer.v1.SummarizerService.SearchDocuments:input_type -> summarizer.v1.SearchDocumentsRequest
	2,  // 10: summarizer.v1.SummarizerService.GetDocument:input_type -> summarizer.v1.GetDocumentRequest
	4,  // 11: summarizer.v1.SummarizerService.GetStatistics:input_type -> summarizer.v1.GetStatisticsRequest
	6,  // 12: summarizer.v1.SummarizerService.ExportDocuments:input_type -> summarizer.v1.ExportDocumentsRequest
	1,  // 13: summarizer.v1.SummarizerService.SearchDocuments:output_type -> summarizer.v1.SearchDocumentsResponse
	3,  // 14: summarizer.v1.SummarizerService.GetDocument:output_type -> summarizer.v1.GetDocumentResponse
	5,  // 15: summarizer.v1.SummarizerService.GetStatistics:output_type -> summarizer.v1.GetStatisticsResponse
	7,  // 16: summarizer.v1.SummarizerService.ExportDocuments:output_type -> summarizer.v1.ExportDocumentsResponse
	13, // [13:17] is the sub-list for method output_type
	9,  // [9:13] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_summarizer_v1_summarizer_proto_init() }
func file_summarizer_v1_summarizer_proto_init() {
	if File_summarizer_v1_summarizer_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_summarizer_v1_summarizer_proto_rawDesc), len(file_summarizer_v1_summarizer_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_summarizer_v1_summarizer_proto_goTypes,
		DependencyIndexes: file_summarizer_v1_summarizer_proto_depIdxs,
		MessageInfos:      file_summarizer_v1_summarizer_proto_msgTypes,
	}.Build()
	File_summarizer_v1_summarizer_proto = out.File
	file_summarizer_v1_summarizer_proto_goTypes = nil
	file_summarizer_v1_summarizer_proto_depIdxs = nil
}
