package client

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/pkg/errors"
)

type filePart struct {
	field    string
	filename string
	content  io.Reader
}

type payloadField struct {
	key   string
	value string
	raw   bool // value is pre-encoded JSON
}

// Payload builds a create/update request body. Without file parts it encodes
// as a JSON object; adding any file switches the whole payload to
// multipart/form-data, with slice fields carried as JSON-encoded strings.
type Payload struct {
	fields []payloadField
	files  []filePart
}

// NewPayload creates an empty payload.
func NewPayload() *Payload {
	return &Payload{}
}

// Set adds a plain string field.
func (p *Payload) Set(key, value string) *Payload {
	p.fields = append(p.fields, payloadField{key: key, value: value})

	return p
}

// SetBool adds a boolean field.
func (p *Payload) SetBool(key string, value bool) *Payload {
	p.fields = append(p.fields, payloadField{key: key, value: strconv.FormatBool(value), raw: true})

	return p
}

// SetNumber adds a numeric field.
func (p *Payload) SetNumber(key string, value float64) *Payload {
	p.fields = append(p.fields, payloadField{
		key:   key,
		value: strconv.FormatFloat(value, 'f', -1, 64),
		raw:   true,
	})

	return p
}

// SetInt adds an integer field.
func (p *Payload) SetInt(key string, value int) *Payload {
	p.fields = append(p.fields, payloadField{key: key, value: strconv.Itoa(value), raw: true})

	return p
}

// SetJSON adds a field whose value is JSON-encoded, used for slices.
func (p *Payload) SetJSON(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode payload field %q", key)
	}
	p.fields = append(p.fields, payloadField{key: key, value: string(raw), raw: true})

	return nil
}

// AddFile attaches a file part, switching the payload to multipart encoding.
func (p *Payload) AddFile(field, filename string, content io.Reader) *Payload {
	p.files = append(p.files, filePart{field: field, filename: filename, content: content})

	return p
}

// HasFiles reports whether the payload carries any file parts.
func (p *Payload) HasFiles() bool {
	return len(p.files) > 0
}

func (p *Payload) encode() (io.Reader, string, error) {
	if !p.HasFiles() {
		return p.encodeJSON()
	}

	return p.encodeMultipart()
}

func (p *Payload) encodeJSON() (io.Reader, string, error) {
	object := make(map[string]json.RawMessage, len(p.fields))
	for _, f := range p.fields {
		if f.raw {
			object[f.key] = json.RawMessage(f.value)

			continue
		}
		encoded, err := json.Marshal(f.value)
		if err != nil {
			return nil, "", errors.Wrapf(err, "encode payload field %q", f.key)
		}
		object[f.key] = encoded
	}

	raw, err := json.Marshal(object)
	if err != nil {
		return nil, "", errors.Wrap(err, "encode payload")
	}

	return bytes.NewReader(raw), "application/json", nil
}

func (p *Payload) encodeMultipart() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, f := range p.fields {
		if err := writer.WriteField(f.key, f.value); err != nil {
			return nil, "", errors.Wrapf(err, "write form field %q", f.key)
		}
	}

	for _, file := range p.files {
		part, err := writer.CreateFormFile(file.field, file.filename)
		if err != nil {
			return nil, "", errors.Wrapf(err, "create form file %q", file.field)
		}
		if _, err := io.Copy(part, file.content); err != nil {
			return nil, "", errors.Wrapf(err, "copy form file %q", file.filename)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "finalize multipart body")
	}

	return &buf, writer.FormDataContentType(), nil
}
