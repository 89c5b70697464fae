// Package dto defines request/response shapes for the auth feature's HTTP transport layer.
package dto

// SignupForm represents the registration form posted to /signup/.
// Password2 must repeat Password1; the email format and the 6-50 length
// bounds are enforced by the binding tags.
type SignupForm struct {
	Email     string `form:"email" binding:"required,email,min=6,max=50"`
	Password1 string `form:"password1" binding:"required,min=6,max=50"`
	Password2 string `form:"password2" binding:"required,eqfield=Password1"`
}
