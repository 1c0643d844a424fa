package email

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
)

// Parse parses a raw email into a Message. Multipart bodies are flattened
// recursively and transfer encodings are decoded; a part that fails to
// decode keeps its raw bytes.
func Parse(rawEmail []byte) (*Message, error) {
	msg, err := mail.ReadMessage(bytes.NewReader(rawEmail))
	if err != nil {
		return nil, err
	}

	message := &Message{Headers: make(map[string][]string)}
	for key, values := range msg.Header {
		message.Headers[strings.ToLower(key)] = values
	}

	contentType := msg.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/plain"
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = "text/plain"
		params = nil
	}

	if strings.HasPrefix(mediaType, "multipart/") && params["boundary"] != "" {
		parts, err := parseMultipart(msg.Body, params["boundary"])
		if err == nil || len(parts) > 0 {
			message.Parts = parts
		}
		return message, nil
	}

	body, err := io.ReadAll(msg.Body)
	if err == nil {
		message.Parts = []Part{{
			ContentType: mediaType,
			Body:        decodeBody(body, msg.Header.Get("Content-Transfer-Encoding")),
		}}
	}
	return message, nil
}

func parseMultipart(body io.Reader, boundary string) ([]Part, error) {
	var parts []Part
	mr := multipart.NewReader(body, boundary)

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return parts, err
		}

		contentType := part.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "text/plain"
		}
		mediaType, params, _ := mime.ParseMediaType(contentType)

		partBody, err := io.ReadAll(part)
		if err != nil {
			continue
		}
		decoded := decodeBody(partBody, part.Header.Get("Content-Transfer-Encoding"))

		p := Part{ContentType: mediaType, Body: decoded}
		if strings.HasPrefix(mediaType, "multipart/") && params["boundary"] != "" {
			nested, err := parseMultipart(strings.NewReader(decoded), params["boundary"])
			if err == nil {
				p.Parts = nested
			}
		}
		parts = append(parts, p)
	}

	return parts, nil
}

func decodeBody(body []byte, encoding string) string {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		// The decoder skips interior CR/LF, so 76-column wrapped bodies
		// decode as one stream.
		reader := base64.NewDecoder(base64.StdEncoding, bytes.NewReader(bytes.TrimSpace(body)))
		if decoded, err := io.ReadAll(reader); err == nil {
			return string(decoded)
		}
	case "quoted-printable":
		if decoded, err := io.ReadAll(quotedprintable.NewReader(bytes.NewReader(body))); err == nil {
			return string(decoded)
		}
	}
	return string(body)
}
