package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every client; validator caches struct metadata
// and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 16 << 20

// decodeResponse decodes body into v and validates it. what names the
// response in error messages.
func decodeResponse(what string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnexpectedResponse, what, err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrUnexpectedResponse, what, describeValidation(err))
	}
	return nil
}

// describeValidation turns validator errors into a short field list.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(fields, ", ")
}

// readBody reads at most maxBodySize bytes of r.
func readBody(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}
	return body, nil
}
