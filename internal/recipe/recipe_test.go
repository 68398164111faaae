package recipe

import (
	"encoding/base64"
	"errors"
	"testing"
)

func TestValidateTags(t *testing.T) {
	tests := []struct {
		name    string
		tagIDs  []int64
		wantErr error
	}{
		{name: "single tag", tagIDs: []int64{1}, wantErr: nil},
		{name: "several distinct tags", tagIDs: []int64{1, 2, 3}, wantErr: nil},
		{name: "no tags", tagIDs: nil, wantErr: ErrNoTags},
		{name: "duplicate tag", tagIDs: []int64{1, 2, 1}, wantErr: ErrDuplicateTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTags(tt.tagIDs)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTags(%v) = %v, want %v", tt.tagIDs, err, tt.wantErr)
			}
		})
	}
}

func TestValidateIngredients(t *testing.T) {
	tests := []struct {
		name    string
		entries []IngredientEntry
		wantErr error
	}{
		{
			name:    "valid entries",
			entries: []IngredientEntry{{ID: 1, Amount: 1}, {ID: 2, Amount: 32000}},
			wantErr: nil,
		},
		{name: "no ingredients", entries: nil, wantErr: ErrNoIngredients},
		{
			name:    "duplicate ingredient",
			entries: []IngredientEntry{{ID: 1, Amount: 5}, {ID: 1, Amount: 7}},
			wantErr: ErrDuplicateIngredient,
		},
		{
			name:    "amount below minimum",
			entries: []IngredientEntry{{ID: 1, Amount: 0}},
			wantErr: ErrAmountOutOfRange,
		},
		{
			name:    "amount above maximum",
			entries: []IngredientEntry{{ID: 1, Amount: 32001}},
			wantErr: ErrAmountOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIngredients(tt.entries)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateIngredients() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCookingTime(t *testing.T) {
	tests := []struct {
		name    string
		minutes int32
		wantErr error
	}{
		{name: "lower bound", minutes: 1, wantErr: nil},
		{name: "upper bound", minutes: 32000, wantErr: nil},
		{name: "zero", minutes: 0, wantErr: ErrCookingTimeOutOfRange},
		{name: "too large", minutes: 32001, wantErr: ErrCookingTimeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCookingTime(tt.minutes)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCookingTime(%d) = %v, want %v", tt.minutes, err, tt.wantErr)
			}
		})
	}
}

// pngHeader is a minimal PNG signature followed by padding, enough for
// content sniffing to report image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestDecodeImage(t *testing.T) {
	pngPayload := base64.StdEncoding.EncodeToString(pngHeader)

	tests := []struct {
		name     string
		payload  string
		wantErr  error
		wantMime string
	}{
		{
			name:     "bare base64 png",
			payload:  pngPayload,
			wantMime: "image/png",
		},
		{
			name:     "data uri png",
			payload:  "data:image/png;base64," + pngPayload,
			wantMime: "image/png",
		},
		{
			name:    "empty payload",
			payload: "",
			wantErr: ErrInvalidImage,
		},
		{
			name:    "malformed data uri",
			payload: "data:image/png;base64",
			wantErr: ErrInvalidImage,
		},
		{
			name:    "not base64",
			payload: "!!!not-base64!!!",
			wantErr: ErrInvalidImage,
		},
		{
			name:    "plain text content",
			payload: base64.StdEncoding.EncodeToString([]byte("hello world, this is not an image")),
			wantErr: ErrUnsupportedMimeType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := DecodeImage(tt.payload)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeImage() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeImage() error = %v", err)
			}
			if file.MimeType != tt.wantMime {
				t.Errorf("DecodeImage() mime = %q, want %q", file.MimeType, tt.wantMime)
			}
			if file.Suffix != ".png" {
				t.Errorf("DecodeImage() suffix = %q, want .png", file.Suffix)
			}
			if file.Size != int64(len(pngHeader)) {
				t.Errorf("DecodeImage() size = %d, want %d", file.Size, len(pngHeader))
			}
		})
	}
}
