package encrypter

import "golang.org/x/crypto/bcrypt"

func (e *implEncrypter) HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPasswordHash also accepts a plain (non bcrypt) stored value to ease local setups.
func (e *implEncrypter) CheckPasswordHash(password, hash string) bool {
	if len(hash) < 4 || hash[0] != '$' {
		return password != "" && password == hash
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
