package helper

import (
	"errors"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validator "gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	validate := validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	return &HTTPHelper{Validate: validate, Translator: translator}
}

// ValidatePayload runs struct validation against the `validate` tags and
// returns a translated, human-readable message, or "" when the payload is
// valid.
func (u *HTTPHelper) ValidatePayload(payload interface{}) string {
	err := u.Validate.Struct(payload)
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	translated := validationErrors.Translate(u.Translator)
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, translated[fieldErr.Namespace()])
	}

	return strings.Join(messages, "; ")
}

// SendError ...
// Send error response to consumers as {"message": ...}.
func (u *HTTPHelper) SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	u.SendError(c, http.StatusBadRequest, message)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	u.SendError(c, http.StatusNotFound, message)
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	u.SendError(c, http.StatusUnauthorized, message)
}

// SendForbiddenError ...
// Send forbidden response to consumers.
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string) {
	u.SendError(c, http.StatusForbidden, message)
}

// SendInternalError ...
// Send internal server error response to consumers.
func (u *HTTPHelper) SendInternalError(c *gin.Context, message string) {
	u.SendError(c, http.StatusInternalServerError, message)
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a string and strips it to a URL-safe
// letters/digits/hyphens token.
func Slugify(s string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// UniquePostSlug derives a post slug from its title with a millisecond
// timestamp suffix, so repeated titles never collide.
func UniquePostSlug(title string) string {
	return Slugify(title) + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// HasMore reports whether pages remain past the current one.
func HasMore(page, limit int, total int64) bool {
	return int64(page)*int64(limit) < total
}
