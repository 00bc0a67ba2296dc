package types

// ResumeType distinguishes how the resume was supplied.
type ResumeType string

const (
	// ResumeText is a plain-text resume pasted by the user
	ResumeText ResumeType = "text"
	// ResumePDF is an uploaded PDF kept as an encoded blob
	ResumePDF ResumeType = "pdf"
)

// ResumeData is the single global resume. ExtractedText is the plain text
// used for match analysis and is derived once at upload time, so it is
// present even when Type is pdf.
type ResumeData struct {
	Type          ResumeType `json:"type"`
	Content       string     `json:"content"`
	ExtractedText string     `json:"extractedText"`
}
