package dto

// LoginForm is the sign-in form.
type LoginForm struct {
	Email      string `form:"email" binding:"required,email"`
	Password   string `form:"password" binding:"required"`
	RedirectTo string `form:"redirectTo"`
}

// ConfirmForm is posted by confirmation pages of destructive actions.
type ConfirmForm struct {
	Confirm string `form:"confirm"`
}

// Confirmed reports whether the user explicitly confirmed.
func (f ConfirmForm) Confirmed() bool {
	return f.Confirm == "yes"
}
