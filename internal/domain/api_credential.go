package domain

import "crypto/subtle"

// APICredential は特権操作を保護する共有シークレットを表す
type APICredential struct {
	secret string
}

// NewAPICredential は設定された共有シークレットからAPICredentialを生成する
func NewAPICredential(secret string) (APICredential, error) {
	if secret == "" {
		return APICredential{}, ErrEmptyCredential
	}
	return APICredential{secret: secret}, nil
}

// Verify は提示された資格情報を一定時間比較で検証する
func (c APICredential) Verify(supplied string) bool {
	if c.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.secret), []byte(supplied)) == 1
}
