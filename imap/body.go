package imap

import (
	"io"
	"strings"

	"github.com/emersion/go-message"
)

// ReadBody extracts the display body from a raw RFC 822 message. Alert
// emails are HTML; the text/html part is preferred and text/plain is the
// fallback. Nested multipart containers are walked recursively.
func ReadBody(r io.Reader) (string, error) {
	entity, err := message.Read(r)
	if err != nil && !message.IsUnknownCharset(err) {
		return "", err
	}
	html, plain := bodyParts(entity)
	if html != "" {
		return html, nil
	}
	return plain, nil
}

func bodyParts(entity *message.Entity) (html, plain string) {
	mr := entity.MultipartReader()
	if mr == nil {
		mediaType, _, _ := entity.Header.ContentType()
		b, err := io.ReadAll(entity.Body)
		if err != nil {
			return "", ""
		}
		if mediaType == "text/plain" {
			return "", string(b)
		}
		return string(b), ""
	}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		mediaType, _, _ := part.Header.ContentType()
		switch {
		case strings.HasPrefix(mediaType, "multipart/"):
			h, p := bodyParts(part)
			if html == "" {
				html = h
			}
			if plain == "" {
				plain = p
			}
		case mediaType == "text/html":
			if b, err := io.ReadAll(part.Body); err == nil && html == "" {
				html = string(b)
			}
		case mediaType == "text/plain":
			if b, err := io.ReadAll(part.Body); err == nil && plain == "" {
				plain = string(b)
			}
		}
	}
	return html, plain
}
