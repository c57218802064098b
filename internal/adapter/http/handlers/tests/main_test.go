package tests

import (
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/pkg/translator"
)

const translationFolder = "../../../../../pkg/translator/translation"

const testJwtSecret = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageVi, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

func signToken(userID string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJwtSecret))
	if err != nil {
		panic(err)
	}
	return "Bearer " + signed
}
