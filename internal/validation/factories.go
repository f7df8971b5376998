package validation

// SignUp checks name, email, password and passwordConfirmation are present,
// that the confirmation matches and that the e-mail is well formed.
func SignUp(checker EmailChecker) *Composite {
	return NewComposite(
		NewRequiredField("name"),
		NewRequiredField("email"),
		NewRequiredField("password"),
		NewRequiredField("passwordConfirmation"),
		NewFieldsEqual("passwordConfirmation", "password"),
		NewEmailFormat("email", checker),
	)
}

func SignIn(checker EmailChecker) *Composite {
	return NewComposite(
		NewRequiredField("email"),
		NewRequiredField("password"),
		NewEmailFormat("email", checker),
	)
}

func AddSurvey() *Composite {
	return NewComposite(
		NewRequiredField("question"),
		NewRequiredField("answers"),
	)
}
