package validator_test

import (
	"errors"
	"marquee/shared/failure"
	"marquee/shared/validator"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listingForm struct {
	Name    string `json:"name"    validate:"required"`
	State   string `json:"state"   validate:"required,usstate"`
	Phone   string `json:"phone"   validate:"required,phone"`
	Website string `json:"website" validate:"omitempty,url"`
	Genres  []int  `json:"genres"  validate:"required,min=1"`
}

type uploadForm struct {
	Image *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/jpeg image/png,maxfilesize=1"`
}

func validForm() listingForm {
	return listingForm{
		Name:   "The Musical Hop",
		State:  "CA",
		Phone:  "123-123-1234",
		Genres: []int{1},
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var f *failure.Failure
	require.True(t, errors.As(err, &f), "expected *failure.Failure, got %T", err)
	assert.Equal(t, failure.KindValidationFailed, f.Kind)

	return f.Fields
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*listingForm)
		wantFields []string
	}{
		{
			name:   "valid struct",
			mutate: func(*listingForm) {},
		},
		{
			name:       "missing name",
			mutate:     func(f *listingForm) { f.Name = "" },
			wantFields: []string{"name"},
		},
		{
			name:       "unknown state",
			mutate:     func(f *listingForm) { f.State = "ZZ" },
			wantFields: []string{"state"},
		},
		{
			name:   "district of columbia is a state code",
			mutate: func(f *listingForm) { f.State = "DC" },
		},
		{
			name:       "phone with leading zero",
			mutate:     func(f *listingForm) { f.Phone = "023-123-1234" },
			wantFields: []string{"phone"},
		},
		{
			name:       "phone without dashes",
			mutate:     func(f *listingForm) { f.Phone = "1231231234" },
			wantFields: []string{"phone"},
		},
		{
			name:       "malformed website",
			mutate:     func(f *listingForm) { f.Website = "not a url" },
			wantFields: []string{"website"},
		},
		{
			name:       "no genres",
			mutate:     func(f *listingForm) { f.Genres = []int{} },
			wantFields: []string{"genres"},
		},
		{
			name: "every failing field is reported",
			mutate: func(f *listingForm) {
				f.Name = ""
				f.State = "ZZ"
				f.Phone = "x"
			},
			wantFields: []string{"name", "state", "phone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)

			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)

				return
			}

			fields := fieldsOf(t, err)
			assert.Len(t, fields, len(tt.wantFields))

			for _, field := range tt.wantFields {
				assert.Contains(t, fields, field)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	form := validForm()
	form.State = "ZZ"
	form.Name = ""

	fields := fieldsOf(t, validator.ValidateStruct(&form))

	assert.Equal(t, "name is required", fields["name"])
	assert.Equal(t, "state must be a valid US state code", fields["state"])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		jsonBody   string
		wantFields []string
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"name":"Hop","state":"NY","phone":"212-555-0100","genres":[2,3]}`,
		},
		{
			name:       "invalid field",
			jsonBody:   `{"name":"Hop","state":"ZZ","phone":"212-555-0100","genres":[2]}`,
			wantFields: []string{"state"},
		},
		{
			name:       "malformed JSON",
			jsonBody:   `{"name":"Hop","state":}`,
			wantFields: []string{"body"},
		},
		{
			name:       "empty JSON",
			jsonBody:   `{}`,
			wantFields: []string{"name", "state", "phone", "genres"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data listingForm

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)

				return
			}

			fields := fieldsOf(t, err)
			for _, field := range tt.wantFields {
				assert.Contains(t, fields, field)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	err := validator.ValidateVar("", "name", "required")

	fields := fieldsOf(t, err)
	assert.Equal(t, "name is required", fields["name"])

	assert.NoError(t, validator.ValidateVar("CA", "state", "usstate"))
}

func TestFileValidation(t *testing.T) {
	header := func(contentType string, size int64) *multipart.FileHeader {
		return &multipart.FileHeader{
			Filename: "cover",
			Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
			Size:     size,
		}
	}

	tests := []struct {
		name    string
		image   *multipart.FileHeader
		wantErr bool
	}{
		{name: "png within limit", image: header("image/png", 512)},
		{name: "unsupported type", image: header("application/pdf", 512), wantErr: true},
		{name: "too large", image: header("image/jpeg", 2<<20), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&uploadForm{Image: tt.image})

			if tt.wantErr {
				fields := fieldsOf(t, err)
				assert.Contains(t, fields, "image")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
