package handler

// --- Form request types ---

type registerForm struct {
	Name        string `form:"name"          validate:"required"`
	LastName    string `form:"last_name"`
	Email       string `form:"email"         validate:"required,email"`
	Password    string `form:"password"      validate:"required,min=4"`
	DetectiveID string `form:"detective_id"`
}

type loginForm struct {
	Email    string `form:"email"    validate:"required"`
	Password string `form:"password" validate:"required"`
}

type profileForm struct {
	Name     string `form:"name"      validate:"required"`
	LastName string `form:"last_name"`
	Email    string `form:"email"     validate:"required,email"`
}

type caseForm struct {
	Title       string `form:"title"       validate:"required"`
	Description string `form:"description"`
	Content     string `form:"content"     validate:"required"`
}
