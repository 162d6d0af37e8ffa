package apiclient

import (
	"bytes"
	"io"
	"mime/multipart"
)

// Form es un cuerpo multipart/form-data. El cliente lo envía tal cual y usa
// su propio Content-Type con el boundary.
type Form struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
	closed bool
}

func NewForm() *Form {
	f := &Form{}
	f.writer = multipart.NewWriter(&f.buf)
	return f
}

func (f *Form) Field(name, value string) *Form {
	if f.err != nil || f.closed {
		return f
	}
	f.err = f.writer.WriteField(name, value)
	return f
}

func (f *Form) File(field, filename string, content io.Reader) *Form {
	if f.err != nil || f.closed {
		return f
	}
	part, err := f.writer.CreateFormFile(field, filename)
	if err != nil {
		f.err = err
		return f
	}
	_, f.err = io.Copy(part, content)
	return f
}

func (f *Form) ContentType() string {
	return f.writer.FormDataContentType()
}

// Bytes cierra el formulario y devuelve el cuerpo final.
func (f *Form) Bytes() ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !f.closed {
		if err := f.writer.Close(); err != nil {
			f.err = err
			return nil, err
		}
		f.closed = true
	}
	return f.buf.Bytes(), nil
}
