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

// Package constants defines error constants for the request server.
package constants

import "github.com/asgardeo/wikimediator/internal/system/error/serviceerror"

// Client errors for request processing.
var (
	// ErrorInvalidRequestFormat is the error returned when a request line is not a JSON object.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WM-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request is not a valid JSON object",
	}
	// ErrorUnsupportedRequestType is the error returned when the request type is unknown.
	ErrorUnsupportedRequestType = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WM-1002",
		Error:            "Unsupported request type",
		ErrorDescription: "The request type is not supported",
	}
	// ErrorInvalidRequestParameters is the error returned when required parameters are missing or invalid.
	ErrorInvalidRequestParameters = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WM-1003",
		Error:            "Invalid request parameters",
		ErrorDescription: "One or more request parameters are missing or invalid",
	}
	// ErrorPageNotFound is the error returned when the requested page does not exist.
	ErrorPageNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WM-1004",
		Error:            "Page not found",
		ErrorDescription: "The requested page does not exist",
	}
	// ErrorInvalidArgument is the error returned when a limit or hop count is out of range.
	ErrorInvalidArgument = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WM-1005",
		Error:            "Invalid argument",
		ErrorDescription: "Limits and hop counts must not be negative",
	}
)

// Server errors for request processing.
var (
	// ErrorInternalServerError is the error returned when an unexpected failure occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "WM-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorRequestTimeout is the error returned when a request does not complete in time.
	ErrorRequestTimeout = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "WM-5001",
		Error:            "Request timed out",
		ErrorDescription: "The request did not complete within the configured timeout",
	}
)
