package validate_test

import (
	"testing"

	"github.com/singitronic/storefront/pkg/validate"
)

type productInput struct {
	Slug         string `json:"slug" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Price        int    `json:"price" validate:"required,gte=0"`
	Manufacturer string `json:"manufacturer" validate:"required"`
	Role         string `json:"role" validate:"nullable,in=admin,user"`
	Email        string `json:"email" validate:"nullable,email"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(productInput{
		Slug:         "gaming-laptop",
		Title:        "Gaming Laptop",
		Price:        1200,
		Manufacturer: "Acme",
		Role:         "user",
		Email:        "buyer@example.com",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"slug", "title", "manufacturer"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	errs := validate.Struct(productInput{
		Slug: "s", Title: "t", Price: 1, Manufacturer: "m",
	})
	if _, ok := errs["role"]; ok {
		t.Error("empty nullable role should pass")
	}
	if _, ok := errs["email"]; ok {
		t.Error("empty nullable email should pass")
	}
}

func TestInRule(t *testing.T) {
	errs := validate.Struct(productInput{
		Slug: "s", Title: "t", Price: 1, Manufacturer: "m", Role: "superuser",
	})
	if _, ok := errs["role"]; !ok {
		t.Error("expected in= violation for role")
	}
}

func TestEmailRule(t *testing.T) {
	errs := validate.Struct(productInput{
		Slug: "s", Title: "t", Price: 1, Manufacturer: "m", Email: "not-an-email",
	})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
}
