package errors

const (
	MissingRequiredFields     = "Missing required fields"
	AgreementExists           = "Agreement already exists for this email"
	UserExists                = "User already exists"
	AnnouncementNotFound      = "Announcement not found"
	InvalidAnnouncementID     = "Invalid announcement ID"
	InvalidRequestFormatError = "Invalid request format"
	DatabaseError             = "Database error"
	UnauthorizedError         = "Identity does not match requested email"
)
