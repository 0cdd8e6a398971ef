package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-marketplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sellerAddressJSON = `"companyName":"Acme","streetAddress":"1 Main St","city":"Springfield","state":"IL","country":"US"`

// validationIssues runs raw through the named catalog schema and returns
// the reported issues, failing the test if validation succeeded.
func validationIssues(t *testing.T, schema, raw string) []Issue {
	t.Helper()

	_, err := NewPipeline().Validate(context.Background(), MustLookup(schema), []byte(raw))
	require.Error(t, err)

	vErr, ok := AsValidationError(err)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	assert.Equal(t, schema, vErr.Schema)
	return vErr.Issues
}

func mustValidate[T any](t *testing.T, schema, raw string) *T {
	t.Helper()

	payload, err := Validate[T](context.Background(), NewPipeline(), MustLookup(schema), []byte(raw))
	require.NoError(t, err)
	require.NotNil(t, payload)
	return payload
}

func TestPipeline_RequiredFieldAbsent(t *testing.T) {
	issues := validationIssues(t, SchemaCategoryCreate, `{"slug":"shoes"}`)

	assert.Equal(t, []Issue{{Path: "name", Message: "is required"}}, issues)
}

func TestPipeline_OptionalFieldAbsent(t *testing.T) {
	got := mustValidate[models.CreateCategoryRequest](t, SchemaCategoryCreate, `{"name":"Shoes"}`)

	assert.Equal(t, "Shoes", got.Name)
	assert.Nil(t, got.Slug)
	assert.Nil(t, got.SortOrder)
	assert.False(t, got.Description.Present)
	assert.False(t, got.ParentID.Present)
}

func TestPipeline_Defaults(t *testing.T) {
	t.Run("category isActive", func(t *testing.T) {
		got := mustValidate[models.CreateCategoryRequest](t, SchemaCategoryCreate, `{"name":"Shoes"}`)
		require.NotNil(t, got.IsActive)
		assert.True(t, *got.IsActive)
	})

	t.Run("explicit value wins", func(t *testing.T) {
		got := mustValidate[models.CreateCategoryRequest](t, SchemaCategoryCreate, `{"name":"Shoes","isActive":"false"}`)
		require.NotNil(t, got.IsActive)
		assert.False(t, *got.IsActive)
	})

	t.Run("register role", func(t *testing.T) {
		got := mustValidate[models.RegisterRequest](t, SchemaAuthRegister,
			`{"email":"a@b.co","password":"secret123","firstName":"A","lastName":"B"}`)
		assert.Equal(t, "CUSTOMER", got.Role)
	})

	t.Run("user status", func(t *testing.T) {
		got := mustValidate[models.CreateUserRequest](t, SchemaUserCreate,
			`{"email":"a@b.co","password":"secret123","firstName":"A","lastName":"B","role":"CUSTOMER"}`)
		assert.Equal(t, "ACTIVE", got.Status)
	})
}

func TestPipeline_WrongType(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		raw    string
		want   Issue
	}{
		{
			name:   "number for string",
			schema: SchemaCategoryCreate,
			raw:    `{"name":42}`,
			want:   Issue{Path: "name", Message: "expected string"},
		},
		{
			name:   "non-numeric sortOrder",
			schema: SchemaCategoryCreate,
			raw:    `{"name":"Shoes","sortOrder":"ten"}`,
			want:   Issue{Path: "sortOrder", Message: "expected integer"},
		},
		{
			name:   "non-boolean isActive",
			schema: SchemaCategoryCreate,
			raw:    `{"name":"Shoes","isActive":"yes"}`,
			want:   Issue{Path: "isActive", Message: "expected boolean"},
		},
		{
			name:   "object for nullable string",
			schema: SchemaUserProfileUpdate,
			raw:    `{"phone":{"n":1}}`,
			want:   Issue{Path: "phone", Message: "expected string"},
		},
		{
			name:   "string for options",
			schema: SchemaAttributeCreate,
			raw:    `{"name":"Size","type":"SELECT","categoryId":"0195f4a2-7c1e-7000-8000-000000000001","options":"S,M"}`,
			want:   Issue{Path: "options", Message: "expected array of strings"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := validationIssues(t, tt.schema, tt.raw)
			assert.Equal(t, []Issue{tt.want}, issues)
		})
	}
}

func TestPipeline_Formats(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		raw    string
		want   Issue
	}{
		{
			name:   "email",
			schema: SchemaAuthLogin,
			raw:    `{"email":"not-an-email","password":"x"}`,
			want:   Issue{Path: "email", Message: "must be a valid email address"},
		},
		{
			name:   "uuid",
			schema: SchemaAttributeCreate,
			raw:    `{"name":"Color","type":"TEXT","categoryId":"123"}`,
			want:   Issue{Path: "categoryId", Message: "must be a valid UUID"},
		},
		{
			name:   "min length",
			schema: SchemaUserChangePassword,
			raw:    `{"currentPassword":"old-secret","newPassword":"short"}`,
			want:   Issue{Path: "newPassword", Message: "must be at least 8 characters long"},
		},
		{
			name:   "enum",
			schema: SchemaAuthRegister,
			raw:    `{"email":"a@b.co","password":"secret123","firstName":"A","lastName":"B","role":"SUPER_ADMIN"}`,
			want:   Issue{Path: "role", Message: "must be one of: SELLER, CUSTOMER"},
		},
		{
			name:   "slug",
			schema: SchemaCategoryCreate,
			raw:    `{"name":"Shoes","slug":"men shoes"}`,
			want:   Issue{Path: "slug", Message: "must contain only lowercase letters, digits and single hyphens"},
		},
		{
			name:   "numeric minimum",
			schema: SchemaCategoryCreate,
			raw:    `{"name":"Shoes","sortOrder":-1}`,
			want:   Issue{Path: "sortOrder", Message: "must be at least 0"},
		},
		{
			name:   "nullable max length",
			schema: SchemaUserProfileUpdate,
			raw:    `{"zipCode":"123456789012345678901"}`,
			want:   Issue{Path: "zipCode", Message: "must be at most 20 characters long"},
		},
		{
			name:   "option element",
			schema: SchemaAttributeCreate,
			raw:    `{"name":"Size","type":"SELECT","categoryId":"0195f4a2-7c1e-7000-8000-000000000001","options":["S",""]}`,
			want:   Issue{Path: "options[1]", Message: "is required"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := validationIssues(t, tt.schema, tt.raw)
			assert.Equal(t, []Issue{tt.want}, issues)
		})
	}
}

func TestPipeline_ReportsEveryViolatedField(t *testing.T) {
	issues := validationIssues(t, SchemaAuthRegister, `{"email":"nope","password":"short"}`)

	paths := make([]string, 0, len(issues))
	for _, issue := range issues {
		paths = append(paths, issue.Path)
	}
	assert.Equal(t, []string{"email", "password", "firstName", "lastName"}, paths)
}

func TestPipeline_Coercions(t *testing.T) {
	got := mustValidate[models.CreateCategoryRequest](t, SchemaCategoryCreate,
		`{"name":"  Shoes ","slug":" MEN-SHOES ","description":"","isActive":"TRUE","sortOrder":" 10 "}`)

	assert.Equal(t, "Shoes", got.Name)
	require.NotNil(t, got.Slug)
	assert.Equal(t, "men-shoes", *got.Slug)
	assert.True(t, got.Description.Present)
	assert.True(t, got.Description.Null)
	require.NotNil(t, got.IsActive)
	assert.True(t, *got.IsActive)
	require.NotNil(t, got.SortOrder)
	assert.Equal(t, 10, *got.SortOrder)
}

func TestPipeline_EmailNormalized(t *testing.T) {
	got := mustValidate[models.LoginRequest](t, SchemaAuthLogin, `{"email":"  John.Doe@Example.COM ","password":"x"}`)

	assert.Equal(t, "john.doe@example.com", got.Email)
}

func TestPipeline_NullableStates(t *testing.T) {
	got := mustValidate[models.UpdateProfileRequest](t, SchemaUserProfileUpdate,
		`{"phone":null,"city":"","country":"US"}`)

	assert.True(t, got.Phone.Present)
	assert.True(t, got.Phone.Null)
	assert.True(t, got.City.Null, "empty string is coerced to null")
	assert.Equal(t, models.Of("US"), got.Country)
	assert.False(t, got.State.Present)
	assert.Nil(t, got.FirstName)
}

func TestPipeline_NullOnNonNullableIsAbsent(t *testing.T) {
	issues := validationIssues(t, SchemaAuthLogin, `{"email":null,"password":"x"}`)

	assert.Equal(t, []Issue{{Path: "email", Message: "is required"}}, issues)
}

func TestPipeline_UnknownFieldsStripped(t *testing.T) {
	got := mustValidate[models.RegisterRequest](t, SchemaAuthRegister,
		`{"email":"a@b.co","password":"secret123","firstName":"A","lastName":"B","isAdmin":true,"role":"CUSTOMER"}`)

	assert.Equal(t, "CUSTOMER", got.Role)
}

func TestPipeline_UnknownFieldsRejected(t *testing.T) {
	strict := NewSchema[models.LoginRequest]("strict-login", WithUnknownFields(RejectUnknown))

	_, err := NewPipeline().Validate(context.Background(), strict, []byte(`{"email":"a@b.co","password":"x","extra":1}`))

	vErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []Issue{{Path: "extra", Message: "unrecognized field"}}, vErr.Issues)
}

func TestPipeline_NotAnObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: ``, want: "request body is empty"},
		{name: "malformed", raw: `{"name":`, want: "malformed JSON body"},
		{name: "trailing data", raw: `{"name":"a"} {}`, want: "malformed JSON body"},
		{name: "array", raw: `[{"name":"a"}]`, want: "expected a JSON object"},
		{name: "null", raw: `null`, want: "expected a JSON object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := validationIssues(t, SchemaCategoryCreate, tt.raw)
			assert.Equal(t, []Issue{{Message: tt.want}}, issues)
		})
	}
}

func TestPipeline_NilSchema(t *testing.T) {
	_, err := NewPipeline().Validate(context.Background(), nil, []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownSchema)
}

func TestPipeline_SellerRefinement(t *testing.T) {
	base := `"email":"s@shop.co","password":"secret123","firstName":"S","lastName":"Eller","role":"SELLER"`

	t.Run("address absent", func(t *testing.T) {
		issues := validationIssues(t, SchemaAuthRegister, `{`+base+`}`)
		assert.Equal(t, []Issue{{Path: "streetAddress", Message: msgSellerFields}}, issues)
	})

	t.Run("address blank", func(t *testing.T) {
		issues := validationIssues(t, SchemaAuthRegister, `{`+base+`,`+sellerAddressJSON+`,"city":"  "}`)
		assert.Equal(t, []Issue{{Path: "streetAddress", Message: msgSellerFields}}, issues)
	})

	t.Run("address present", func(t *testing.T) {
		got := mustValidate[models.RegisterRequest](t, SchemaAuthRegister, `{`+base+`,`+sellerAddressJSON+`}`)
		assert.Equal(t, "SELLER", got.Role)
		require.NotNil(t, got.StreetAddress)
		assert.Equal(t, "1 Main St", *got.StreetAddress)
	})

	t.Run("customer needs no address", func(t *testing.T) {
		mustValidate[models.RegisterRequest](t, SchemaAuthRegister,
			`{"email":"c@shop.co","password":"secret123","firstName":"C","lastName":"Ustomer","role":"CUSTOMER"}`)
	})

	t.Run("user-create", func(t *testing.T) {
		issues := validationIssues(t, SchemaUserCreate, `{`+base+`}`)
		assert.Equal(t, []Issue{{Path: "streetAddress", Message: msgSellerFields}}, issues)
	})

	t.Run("user-update promoting to seller", func(t *testing.T) {
		issues := validationIssues(t, SchemaUserUpdate, `{"role":"SELLER","city":"Springfield"}`)
		assert.Equal(t, []Issue{{Path: "streetAddress", Message: msgSellerFields}}, issues)
	})

	t.Run("user-update without role", func(t *testing.T) {
		mustValidate[models.UpdateUserRequest](t, SchemaUserUpdate, `{"city":"Springfield"}`)
	})
}

func TestPipeline_RefinementsSkippedOnStructuralIssues(t *testing.T) {
	issues := validationIssues(t, SchemaAuthResetPassword,
		`{"token":"abc","password":"short","confirmPassword":"different"}`)

	assert.Equal(t, []Issue{{Path: "password", Message: "must be at least 8 characters long"}}, issues)
}

func TestPipeline_PasswordRefinements(t *testing.T) {
	issues := validationIssues(t, SchemaAuthResetPassword,
		`{"token":"abc","password":"secret123","confirmPassword":"secret124"}`)
	assert.Equal(t, []Issue{{Path: "confirmPassword", Message: msgPasswordMismatch}}, issues)

	issues = validationIssues(t, SchemaUserChangePassword,
		`{"currentPassword":"secret123","newPassword":"secret123"}`)
	assert.Equal(t, []Issue{{Path: "newPassword", Message: msgPasswordReused}}, issues)
}

func TestPipeline_AttributeOptionsRefinement(t *testing.T) {
	const categoryID = "0195f4a2-7c1e-7000-8000-000000000001"

	issues := validationIssues(t, SchemaAttributeCreate,
		`{"name":"Size","type":"MULTISELECT","categoryId":"`+categoryID+`"}`)
	assert.Equal(t, []Issue{{Path: "options", Message: msgOptionsRequired}}, issues)

	got := mustValidate[models.CreateAttributeRequest](t, SchemaAttributeCreate,
		`{"name":"Size","type":"SELECT","categoryId":"`+categoryID+`","options":["S","M"],"isFilterable":"true"}`)
	assert.Equal(t, []string{"S", "M"}, got.Options)
	require.NotNil(t, got.IsFilterable)
	assert.True(t, *got.IsFilterable)

	issues = validationIssues(t, SchemaAttributeUpdate, `{"type":"SELECT"}`)
	assert.Equal(t, []Issue{{Path: "options", Message: msgOptionsRequired}}, issues)
}

func TestPipeline_EmptyUpdates(t *testing.T) {
	for _, schema := range []string{SchemaUserUpdate, SchemaUserProfileUpdate, SchemaCategoryUpdate, SchemaAttributeUpdate} {
		t.Run(schema, func(t *testing.T) {
			issues := validationIssues(t, schema, `{"unknown":"dropped"}`)
			assert.Equal(t, []Issue{{Message: msgNothingToUpdate}}, issues)
		})
	}
}

// TestPipeline_CreateAndUpdateAgree verifies that the create and update
// variants of an entity accept and normalize a field the same way.
func TestPipeline_CreateAndUpdateAgree(t *testing.T) {
	created := mustValidate[models.CreateCategoryRequest](t, SchemaCategoryCreate,
		`{"name":" Shoes ","slug":"SHOES","sortOrder":"3","bogus":1}`)
	updated := mustValidate[models.UpdateCategoryRequest](t, SchemaCategoryUpdate,
		`{"name":" Shoes ","slug":"SHOES","sortOrder":"3","bogus":1}`)

	require.NotNil(t, updated.Name)
	assert.Equal(t, created.Name, *updated.Name)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, created.SortOrder, updated.SortOrder)

	createIssues := validationIssues(t, SchemaCategoryCreate, `{"name":"Shoes","slug":"bad slug"}`)
	updateIssues := validationIssues(t, SchemaCategoryUpdate, `{"slug":"bad slug"}`)
	assert.Equal(t, createIssues, updateIssues)
}

func TestPipeline_Concurrent(t *testing.T) {
	p := NewPipeline()
	schema := MustLookup(SchemaAuthLogin)

	done := make(chan error, 16)
	for range 16 {
		go func() {
			_, err := p.Validate(context.Background(), schema, []byte(`{"email":"a@b.co","password":"x"}`))
			done <- err
		}()
	}
	for range 16 {
		assert.NoError(t, <-done)
	}
}
