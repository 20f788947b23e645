// Package httputil builds multipart payloads for handlers and tests.
package httputil

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
)

// FormFile is a single file part of a multipart form.
type FormFile struct {
	Field    string
	FileName string
	Content  []byte
}

// CreateForm builds a parsed multipart form holding one file under the "file" field.
func CreateForm(content []byte, fileName string) (*multipart.Form, error) {
	return CreateMultipartForm(nil, FormFile{Field: "file", FileName: fileName, Content: content})
}

// CreateMultipartForm encodes values and files and parses them back into a
// *multipart.Form, the same shape gin hands to handlers.
func CreateMultipartForm(values map[string][]string, files ...FormFile) (*multipart.Form, error) {
	body, contentType, err := EncodeMultipart(values, files...)
	if err != nil {
		return nil, err
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to parse content type: %w", err)
	}

	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(32 << 20)
	if err != nil {
		return nil, fmt.Errorf("failed to read multipart form: %w", err)
	}
	return form, nil
}

// EncodeMultipart writes values and files into a multipart body and returns it
// together with its Content-Type header.
func EncodeMultipart(values map[string][]string, files ...FormFile) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, vals := range values {
		for _, val := range vals {
			if err := writer.WriteField(key, val); err != nil {
				return nil, "", fmt.Errorf("failed to write field %s: %w", key, err)
			}
		}
	}

	for _, f := range files {
		part, err := writer.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", fmt.Errorf("failed to write file content: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}
