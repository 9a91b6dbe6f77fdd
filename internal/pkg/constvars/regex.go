package constvars

const (
	RegexContainAtLeastOneUppercase = `[A-Z]`
	RegexContainAtLeastOneLowercase = `[a-z]`
	RegexContainAtLeastOneDigit     = `[0-9]`
)
