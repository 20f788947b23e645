package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// decodeRequest fills dst from a JSON body or from the values of a multipart
// or urlencoded form. Form values are folded into a JSON object first, a
// single value as a string and repeated values as an array, so that one set
// of json tags describes both encodings. The parsed multipart form is returned
// for file handling and is nil for other encodings.
func decodeRequest(ctx *gin.Context, dst any) (*multipart.Form, error) {
	contentType := ctx.ContentType()

	switch contentType {
	case gin.MIMEMultipartPOSTForm:
		form, err := ctx.MultipartForm()
		if err != nil {
			return nil, common.Invalid("invalid form data: %v", err)
		}
		return form, decodeValues(form.Value, dst)

	case gin.MIMEPOSTForm:
		if err := ctx.Request.ParseForm(); err != nil {
			return nil, common.Invalid("invalid form data: %v", err)
		}
		return nil, decodeValues(ctx.Request.PostForm, dst)

	default:
		if ctx.Request.Body == nil {
			return nil, common.Invalid("request body is required")
		}
		if err := json.NewDecoder(ctx.Request.Body).Decode(dst); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, common.Invalid("request body is required")
			}
			return nil, common.Invalid("invalid JSON body: %v", err)
		}
		return nil, nil
	}
}

func decodeValues(values map[string][]string, dst any) error {
	object := make(map[string]any, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
		case 1:
			object[key] = vals[0]
		default:
			object[key] = vals
		}
	}

	raw, err := json.Marshal(object)
	if err != nil {
		return fmt.Errorf("failed to encode form values: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return common.Invalid("invalid form data: %v", err)
	}
	return nil
}

// parseID reads the :id path parameter.
func parseID(ctx *gin.Context) (uint, error) {
	raw := ctx.Param("id")
	id, ok := strutil.ParseUint(raw)
	if !ok {
		return 0, common.Invalid("invalid id %q", raw)
	}
	return id, nil
}

// parseListQuery reads limit, offset, sortBy, sortOrder and the filters
// allowed by schema from the query string.
func parseListQuery(ctx *gin.Context, schema common.ListSchema) (*common.ListQuery, error) {
	query := common.NewListQuery()

	var err error
	if query.Limit, err = queryInt(ctx, "limit"); err != nil {
		return nil, err
	}
	if query.Offset, err = queryInt(ctx, "offset"); err != nil {
		return nil, err
	}
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = strings.ToLower(ctx.Query("sortOrder"))

	for name := range schema.Filter {
		if value, ok := ctx.GetQuery(name); ok && value != "" {
			query.Filters[name] = value
		}
	}

	if err := query.Validate(schema); err != nil {
		return nil, err
	}
	return query, nil
}

func queryInt(ctx *gin.Context, name string) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, common.Invalid("%s must be an integer", name)
	}
	return v, nil
}
