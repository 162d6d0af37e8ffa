package apiclient

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

func TestForm_BuildsMultipartBody(t *testing.T) {
	form := NewForm().
		Field("title", "Bike").
		File("images", "a.jpg", strings.NewReader("jpeg-a"))

	body, err := form.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	again, _ := form.Bytes()
	if !bytes.Equal(body, again) {
		t.Fatalf("closing twice must not change the body")
	}

	_, params, err := mime.ParseMediaType(form.ContentType())
	if err != nil {
		t.Fatalf("parse content type: %v", err)
	}
	reader := multipart.NewReader(bytes.NewReader(body), params["boundary"])

	part, err := reader.NextPart()
	if err != nil || part.FormName() != "title" {
		t.Fatalf("expected title part, got %v", err)
	}
	value, _ := io.ReadAll(part)
	if string(value) != "Bike" {
		t.Fatalf("unexpected field value %q", value)
	}

	part, err = reader.NextPart()
	if err != nil || part.FileName() != "a.jpg" {
		t.Fatalf("expected file part, got %v", err)
	}
	content, _ := io.ReadAll(part)
	if string(content) != "jpeg-a" {
		t.Fatalf("unexpected file content %q", content)
	}
}

func TestForm_IgnoresWritesAfterClose(t *testing.T) {
	form := NewForm().Field("a", "1")
	first, _ := form.Bytes()
	size := len(first)
	form.Field("b", "2")
	second, _ := form.Bytes()
	if len(second) != size {
		t.Fatalf("expected closed form to stay unchanged")
	}
}
