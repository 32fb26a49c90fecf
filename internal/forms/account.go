package forms

import "wuddevdet/internal/models"

type LoginForm struct {
	Email    string `json:"email" validate:"required,looseemail"`
	Password string `json:"password" validate:"required"`

	fieldState `validate:"-"`
}

var loginMessages = map[string]string{
	"email.required":    "Email is required",
	"email.looseemail":  "Email is invalid",
	"password.required": "Password is required",
}

func (f *LoginForm) SetEmail(v string)    { f.Email = v; f.clear("email") }
func (f *LoginForm) SetPassword(v string) { f.Password = v; f.clear("password") }

func (f *LoginForm) Validate() error {
	return f.record(check(f, loginMessages))
}

type SignupForm struct {
	Name            string `json:"name" validate:"notblank"`
	Email           string `json:"email" validate:"required,looseemail"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Location        string `json:"location" validate:"required,michigancity"`

	fieldState `validate:"-"`
}

var signupMessages = map[string]string{
	"name.notblank":            "Name is required",
	"email.required":           "Email is required",
	"email.looseemail":         "Email is invalid",
	"password.required":        "Password is required",
	"password.min":             "Password must be at least 8 characters",
	"confirmPassword.required": "Please confirm your password",
	"confirmPassword.eqfield":  "Passwords do not match",
	"location.required":        "Please select your location",
	"location.michigancity":    "Please select your location",
}

func (f *SignupForm) SetName(v string)            { f.Name = v; f.clear("name") }
func (f *SignupForm) SetEmail(v string)           { f.Email = v; f.clear("email") }
func (f *SignupForm) SetPassword(v string)        { f.Password = v; f.clear("password") }
func (f *SignupForm) SetConfirmPassword(v string) { f.ConfirmPassword = v; f.clear("confirmPassword") }
func (f *SignupForm) SetLocation(v string)        { f.Location = v; f.clear("location") }

func (f *SignupForm) Validate() error {
	return f.record(check(f, signupMessages))
}

func (f *SignupForm) Input() models.SignupInput {
	return models.SignupInput{
		Name:     f.Name,
		Email:    f.Email,
		Password: f.Password,
		Location: f.Location,
	}
}
