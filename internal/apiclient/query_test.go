package apiclient

import "testing"

func TestQuery_SkipsEmptyValues(t *testing.T) {
	var undefined string
	q := NewQuery().
		Set("city", undefined).
		Set("search", "").
		Set("category", "sports")

	if got := q.Encode(); got != "category=sports" {
		t.Fatalf("expected only populated field, got %q", got)
	}
}

func TestQuery_NumericAndBool(t *testing.T) {
	paid := false
	q := NewQuery().
		SetInt("page", 0).
		SetInt("limit", 20).
		SetFloat("min_price", 0).
		SetFloat("max_price", 12.5).
		SetBool("is_paid", &paid).
		SetBool("active", nil)

	if got := q.Encode(); got != "is_paid=false&limit=20&max_price=12.5" {
		t.Fatalf("unexpected query %q", got)
	}
}

func TestQuery_ArrayConventions(t *testing.T) {
	joined := NewQuery().SetJoined("categories", []string{"music", " ", "art"})
	if got := joined.Encode(); got != "categories=music%2Cart" {
		t.Fatalf("unexpected joined query %q", got)
	}

	repeated := NewQuery().AddEach("tags", []string{"bike", "", "used"})
	if got := repeated.Encode(); got != "tags=bike&tags=used" {
		t.Fatalf("unexpected repeated query %q", got)
	}

	empty := NewQuery().SetJoined("categories", []string{""}).AddEach("tags", nil)
	if got := empty.Encode(); got != "" {
		t.Fatalf("expected empty query, got %q", got)
	}
}

func TestQuery_Path(t *testing.T) {
	if got := NewQuery().Path("meetups"); got != "meetups" {
		t.Fatalf("expected bare endpoint, got %q", got)
	}
	if got := NewQuery().Set("city", "Pune").Path("meetups"); got != "meetups?city=Pune" {
		t.Fatalf("unexpected path %q", got)
	}
}
