package synthesizer

// referenceMimeType is advertised for every reference image regardless of its
// actual encoding.
const referenceMimeType = "image/jpeg"

type generateContentRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	InlineData *requestInlineData `json:"inline_data,omitempty"`
	Text       *string            `json:"text,omitempty"`
}

type requestInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				InlineData *struct {
					MimeType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func newGenerateContentRequest(prompt, reference string) generateContentRequest {
	parts := make([]requestPart, 0, 2)

	if reference != "" {
		parts = append(parts, requestPart{
			InlineData: &requestInlineData{
				MimeType: referenceMimeType,
				Data:     StripDataURL(reference),
			},
		})
	}
	parts = append(parts, requestPart{Text: &prompt})

	return generateContentRequest{
		Contents: []requestContent{{Parts: parts}},
	}
}

// image returns the first inline image of the first candidate as a data URL.
func (r generateContentResponse) image() (string, bool) {
	if len(r.Candidates) == 0 {
		return "", false
	}

	for _, part := range r.Candidates[0].Content.Parts {
		if part.InlineData != nil {
			return DataURL(part.InlineData.MimeType, part.InlineData.Data), true
		}
	}

	return "", false
}
