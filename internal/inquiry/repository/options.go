package repository

type CreateInquiryOptions struct {
	InfluencerID  string
	BusinessEmail string
	Message       string
	Price         *int
	CompanyInfo   string
	AttachmentURL string
}

type CreateMessageOptions struct {
	InquiryID string
	Role      string
	Content   string
}
