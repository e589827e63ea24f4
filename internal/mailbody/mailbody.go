// Package mailbody selects the best readable body from a MIME part tree,
// the shape mail APIs deliver multipart messages in.
package mailbody

import (
	"encoding/base64"
	"strings"

	"github.com/anveshm/notice-digest/internal/extract"
)

// Part is one node of a message's MIME tree. Data carries the body payload
// base64url-encoded, the way mail APIs hand it over.
type Part struct {
	MIMEType string  `json:"mimeType"`
	Data     string  `json:"data,omitempty"`
	Parts    []*Part `json:"parts,omitempty"`
}

// Message is a fetched mail message reduced to what summarization needs.
type Message struct {
	Subject string `json:"subject"`
	Date    string `json:"date"`
	Snippet string `json:"snippet"`
	Payload *Part  `json:"payload"`
}

// FindBody picks the message body to summarize. text/html wins over
// text/plain, which wins over the snippet. HTML is flattened to plain text
// with link targets kept visible.
func FindBody(msg Message) (string, error) {
	if msg.Payload == nil {
		return msg.Snippet, nil
	}

	if len(msg.Payload.Parts) > 0 {
		var plainFallbacks []string
		html, err := walkParts(msg.Payload, &plainFallbacks)
		if err != nil {
			return "", err
		}
		if html != "" {
			return html, nil
		}
		if len(plainFallbacks) > 0 {
			return plainFallbacks[0], nil
		}
		return msg.Snippet, nil
	}

	switch msg.Payload.MIMEType {
	case "text/html":
		body, err := extract.HTMLToText(decode(msg.Payload.Data))
		if err != nil {
			return "", err
		}
		if body != "" {
			return body, nil
		}
	case "text/plain":
		if body := decode(msg.Payload.Data); body != "" {
			return body, nil
		}
	}
	return msg.Snippet, nil
}

// walkParts returns the flattened text of the first text/html leaf found
// depth-first, appending any text/plain bodies seen along the way to
// plainFallbacks.
func walkParts(p *Part, plainFallbacks *[]string) (string, error) {
	for _, part := range p.Parts {
		switch part.MIMEType {
		case "text/html":
			return extract.HTMLToText(decode(part.Data))
		case "text/plain":
			if body := decode(part.Data); body != "" {
				*plainFallbacks = append(*plainFallbacks, body)
			}
		}
		if len(part.Parts) > 0 {
			nested, err := walkParts(part, plainFallbacks)
			if err != nil {
				return "", err
			}
			if nested != "" {
				return nested, nil
			}
		}
	}
	return "", nil
}

// decode unpacks a base64url body. Undecodable data is treated as absent.
func decode(data string) string {
	if data == "" {
		return ""
	}
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return ""
	}
	return string(raw)
}
