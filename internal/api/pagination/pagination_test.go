package pagination

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
		wantErr   bool
	}{
		{name: "defaults", url: "/api/recipes", wantPage: 1, wantLimit: DefaultLimit},
		{name: "explicit page and limit", url: "/api/recipes?page=3&limit=10", wantPage: 3, wantLimit: 10},
		{name: "limit capped", url: "/api/recipes?limit=5000", wantPage: 1, wantLimit: maxLimit},
		{name: "zero page", url: "/api/recipes?page=0", wantErr: true},
		{name: "negative limit", url: "/api/recipes?limit=-1", wantErr: true},
		{name: "non-numeric page", url: "/api/recipes?page=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			params, err := Parse(r)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Parse() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if params.Page != tt.wantPage || params.Limit != tt.wantLimit {
				t.Errorf("Parse() = %+v, want page %d limit %d", params, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, Limit: 6}
	if got := p.Offset(); got != 12 {
		t.Errorf("Offset() = %d, want 12", got)
	}
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		count        int64
		params       Params
		wantNext     bool
		wantPrevious bool
	}{
		{
			name:   "single page",
			url:    "/api/recipes",
			count:  4,
			params: Params{Page: 1, Limit: 6},
		},
		{
			name:     "first of many",
			url:      "/api/recipes",
			count:    20,
			params:   Params{Page: 1, Limit: 6},
			wantNext: true,
		},
		{
			name:         "middle page keeps both links",
			url:          "/api/recipes?page=2&tags=breakfast",
			count:        20,
			params:       Params{Page: 2, Limit: 6},
			wantNext:     true,
			wantPrevious: true,
		},
		{
			name:         "last page",
			url:          "/api/recipes?page=4",
			count:        20,
			params:       Params{Page: 4, Limit: 6},
			wantPrevious: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			page := NewPage(r, tt.count, tt.params, nil)

			if page.Count != tt.count {
				t.Errorf("NewPage() count = %d, want %d", page.Count, tt.count)
			}
			if (page.Next != nil) != tt.wantNext {
				t.Errorf("NewPage() next = %v, want present=%v", page.Next, tt.wantNext)
			}
			if (page.Previous != nil) != tt.wantPrevious {
				t.Errorf("NewPage() previous = %v, want present=%v", page.Previous, tt.wantPrevious)
			}
		})
	}
}

func TestNewPagePreservesOtherParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/recipes?page=2&tags=dinner", nil)
	page := NewPage(r, 20, Params{Page: 2, Limit: 6}, nil)

	if page.Next == nil {
		t.Fatal("NewPage() next is nil")
	}
	if !strings.Contains(*page.Next, "tags=dinner") {
		t.Errorf("next link lost query params: %s", *page.Next)
	}
	if !strings.Contains(*page.Next, "page=3") {
		t.Errorf("next link has wrong page: %s", *page.Next)
	}
}
