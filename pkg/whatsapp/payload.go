package whatsapp

import (
	"fmt"

	"github.com/RohanBhoge/whatsapp-api/internal/models"
)

// Fixed template constants. These are consumed by external providers with
// exact-match template expectations; the literal text and URL formats must be
// reproduced byte for byte.
const (
	countryCode  = "91"
	languageCode = "en"

	integratedNumber     = "919270334724"
	documentTemplateName = "kurlaaa"
	templateNamespace    = "bef520bd_6b38_4231_8cd9_2f253f10a1dd"
	documentURLFormat    = "https://mahainformatics.com/files/andheri/%s.pdf"
	greetingFormat       = "Namaste🙏 %s check your %s certificate"

	linkTemplateName     = "certificate_update"
	certificateURLFormat = "https://mahainformatics.com/files/kurla/%s.pdf"
	linkBodyFormat       = "Your %s certificate is ready. Download it here: " + certificateURLFormat
)

// DocumentMessage is the aggregator envelope that delivers the certificate
// PDF as a document attachment with a greeting caption.
type DocumentMessage struct {
	IntegratedNumber string          `json:"integrated_number"`
	ContentType      string          `json:"content_type"`
	Payload          DocumentPayload `json:"payload"`
}

type DocumentPayload struct {
	MessagingProduct string           `json:"messaging_product"`
	Type             string           `json:"type"`
	Template         DocumentTemplate `json:"template"`
}

type DocumentTemplate struct {
	Name            string            `json:"name"`
	Language        TemplateLanguage  `json:"language"`
	Namespace       string            `json:"namespace"`
	ToAndComponents []ToAndComponents `json:"to_and_components"`
}

type TemplateLanguage struct {
	Code   string `json:"code"`
	Policy string `json:"policy,omitempty"`
}

type ToAndComponents struct {
	To         []string           `json:"to"`
	Components DocumentComponents `json:"components"`
}

type DocumentComponents struct {
	Header DocumentHeader `json:"header_1"`
	Body   TextValue      `json:"body_1"`
}

type DocumentHeader struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Value    string `json:"value"`
}

type TextValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// NewDocumentMessage builds the document-attachment payload for a validated
// applicant. Pure function of its input and the fixed constants above.
func NewDocumentMessage(a models.Applicant) *DocumentMessage {
	return &DocumentMessage{
		IntegratedNumber: integratedNumber,
		ContentType:      "template",
		Payload: DocumentPayload{
			MessagingProduct: "whatsapp",
			Type:             "template",
			Template: DocumentTemplate{
				Name: documentTemplateName,
				Language: TemplateLanguage{
					Code:   languageCode,
					Policy: "deterministic",
				},
				Namespace: templateNamespace,
				ToAndComponents: []ToAndComponents{
					{
						To: []string{countryCode + a.Phone},
						Components: DocumentComponents{
							Header: DocumentHeader{
								Filename: a.ApplicationID,
								Type:     "document",
								Value:    fmt.Sprintf(documentURLFormat, a.ApplicationID),
							},
							Body: TextValue{
								Type:  "text",
								Value: fmt.Sprintf(greetingFormat, a.Name, a.CertificateType),
							},
						},
					},
				},
			},
		},
	}
}

// TemplateMessage is the Meta Cloud API template message carrying the
// certificate link in its body parameters.
type TemplateMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	RecipientType    string   `json:"recipient_type"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Template         Template `json:"template"`
}

type Template struct {
	Name       string              `json:"name"`
	Language   TemplateLanguage    `json:"language"`
	Components []TemplateComponent `json:"components"`
}

type TemplateComponent struct {
	Type       string          `json:"type"`
	Parameters []TextParameter `json:"parameters"`
}

type TextParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewTemplateMessage builds the body-parameter payload for a validated
// applicant. The first body parameter is chosen by the caller (display name
// or application ID, depending on the deployment); the second is the fixed
// sentence embedding the certificate type and download link.
func NewTemplateMessage(a models.Applicant, firstParam string) *TemplateMessage {
	return &TemplateMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               countryCode + a.Phone,
		Type:             "template",
		Template: Template{
			Name:     linkTemplateName,
			Language: TemplateLanguage{Code: languageCode},
			Components: []TemplateComponent{
				{
					Type: "body",
					Parameters: []TextParameter{
						{Type: "text", Text: firstParam},
						{Type: "text", Text: fmt.Sprintf(linkBodyFormat, a.CertificateType, a.ApplicationID)},
					},
				},
			},
		},
	}
}
