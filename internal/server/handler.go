/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/asgardeo/wikimediator/internal/graph"
	"github.com/asgardeo/wikimediator/internal/mediator"
	"github.com/asgardeo/wikimediator/internal/pagesource"
	"github.com/asgardeo/wikimediator/internal/server/constants"
	"github.com/asgardeo/wikimediator/internal/system/error/serviceerror"
	"github.com/asgardeo/wikimediator/internal/system/log"
	sysconstants "github.com/asgardeo/wikimediator/internal/system/constants"
)

var supportedRequestTypes = map[string]struct{}{
	RequestTypeSimpleSearch:      {},
	RequestTypeSearch:            {},
	RequestTypeGetPage:           {},
	RequestTypeGetConnectedPages: {},
	RequestTypeGetPath:           {},
	RequestTypeZeitgeist:         {},
	RequestTypeTrending:          {},
	RequestTypePeakLoad30s:       {},
	RequestTypePeakLoad:          {},
}

// RequestHandler decodes requests, dispatches them to the mediator and builds the responses.
type RequestHandler struct {
	mediator mediator.WikiMediatorInterface
	validate *validator.Validate
}

// NewRequestHandler creates a handler serving requests from the given mediator.
func NewRequestHandler(m mediator.WikiMediatorInterface) *RequestHandler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(validateRequestFields, Request{})

	return &RequestHandler{
		mediator: m,
		validate: validate,
	}
}

// HandleLine decodes a single JSON request line and handles it.
func (h *RequestHandler) HandleLine(ctx context.Context, line []byte) Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return failure(req.ID, &constants.ErrorInvalidRequestFormat)
	}
	return h.Handle(ctx, &req)
}

// Handle validates and serves a decoded request.
func (h *RequestHandler) Handle(ctx context.Context, req *Request) Response {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RequestHandler"),
		log.String(log.LoggerKeyRequestID, req.ID.String()),
		log.String(log.LoggerKeyRequestType, req.Type))

	if _, ok := supportedRequestTypes[req.Type]; !ok {
		logger.Debug("Unsupported request type")
		return failure(req.ID, serviceerror.CustomServiceError(constants.ErrorUnsupportedRequestType,
			fmt.Sprintf("The request type %q is not supported", req.Type)))
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Debug("Request validation failed", log.Error(err))
		return failure(req.ID, serviceerror.CustomServiceError(constants.ErrorInvalidRequestParameters,
			describeValidationError(err)))
	}

	result, err := h.dispatch(ctx, req)
	if err != nil {
		svcErr := mapError(err)
		if svcErr.Type == serviceerror.ServerErrorType {
			logger.Error("Request failed", log.Error(err))
		} else {
			logger.Debug("Request rejected", log.Error(err))
		}
		return failure(req.ID, svcErr)
	}

	return Response{
		ID:       req.ID,
		Status:   StatusSuccess,
		Response: result,
	}
}

func (h *RequestHandler) dispatch(ctx context.Context, req *Request) (interface{}, error) {
	switch req.Type {
	case RequestTypeSimpleSearch, RequestTypeSearch:
		return h.mediator.Search(ctx, *req.Query, limitOrDefault(req.Limit))
	case RequestTypeGetPage:
		return h.mediator.GetPage(ctx, req.title())
	case RequestTypeGetConnectedPages:
		return h.mediator.GetConnectedPages(ctx, req.title(), *req.Hops)
	case RequestTypeGetPath:
		return h.mediator.GetPath(ctx, req.StartPage, req.StopPage)
	case RequestTypeZeitgeist:
		return h.mediator.Zeitgeist(limitOrDefault(req.Limit)), nil
	case RequestTypeTrending:
		return h.mediator.Trending(limitOrDefault(req.Limit)), nil
	default:
		return h.mediator.PeakLoad(), nil
	}
}

func limitOrDefault(limit *int) int {
	if limit == nil {
		return sysconstants.DefaultPageSize
	}
	return *limit
}

// validateRequestFields checks the fields each request type requires.
func validateRequestFields(sl validator.StructLevel) {
	req := sl.Current().Interface().(Request)

	switch req.Type {
	case RequestTypeSimpleSearch, RequestTypeSearch:
		if req.Query == nil {
			sl.ReportError(req.Query, "query", "Query", "required", "")
		}
	case RequestTypeGetPage:
		if req.title() == "" {
			sl.ReportError(req.PageTitle, "pageTitle", "PageTitle", "required", "")
		}
	case RequestTypeGetConnectedPages:
		if req.title() == "" {
			sl.ReportError(req.PageTitle, "pageTitle", "PageTitle", "required", "")
		}
		if req.Hops == nil {
			sl.ReportError(req.Hops, "hops", "Hops", "required", "")
		}
	case RequestTypeGetPath:
		if req.StartPage == "" {
			sl.ReportError(req.StartPage, "startPage", "StartPage", "required", "")
		}
		if req.StopPage == "" {
			sl.ReportError(req.StopPage, "stopPage", "StopPage", "required", "")
		}
	}
}

func describeValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return constants.ErrorInvalidRequestParameters.ErrorDescription
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		if fieldErr.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s must satisfy %s=%s",
				strings.ToLower(fieldErr.Field()), fieldErr.Tag(), fieldErr.Param()))
			continue
		}
		problems = append(problems, fmt.Sprintf("%s is %s", strings.ToLower(fieldErr.Field()), fieldErr.Tag()))
	}
	return "Invalid request parameters: " + strings.Join(problems, ", ")
}

// mapError translates a mediator error into the service error reported to the client.
func mapError(err error) *serviceerror.ServiceError {
	switch {
	case errors.Is(err, pagesource.ErrPageNotFound):
		return &constants.ErrorPageNotFound
	case errors.Is(err, mediator.ErrInvalidArgument), errors.Is(err, graph.ErrInvalidArgument):
		return &constants.ErrorInvalidArgument
	case errors.Is(err, context.DeadlineExceeded):
		return &constants.ErrorRequestTimeout
	default:
		return &constants.ErrorInternalServerError
	}
}

func failure(id RequestID, svcErr *serviceerror.ServiceError) Response {
	message := svcErr.ErrorDescription
	if message == "" {
		message = svcErr.Error
	}
	return Response{
		ID:       id,
		Status:   StatusFailed,
		Response: message,
		Code:     svcErr.Code,
	}
}
