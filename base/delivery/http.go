package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var notFoundErrors = []error{
	domain.ErrNotFound,
	domain.ErrListingNotFound,
	domain.ErrAuctionNotFound,
	domain.ErrSettlementNotFound,
	domain.ErrBidNotFound,
	query.ErrNotFound,
}

var preconditionErrors = []error{
	domain.ErrBadParamInput,
	domain.ErrInvalidAmountFormat,
	domain.ErrOneUnitDeposit,
	domain.ErrZeroDeposit,
	domain.ErrCrossContractOnly,
	domain.ErrOwnerSignerMismatch,
	domain.ErrNotOwner,
	domain.ErrNotForSale,
	domain.ErrAssetNotSupported,
	domain.ErrBidTooLow,
	domain.ErrBidNotExpirable,
	domain.ErrBidNotExpired,
	domain.ErrOutOfTimeWindow,
	domain.ErrSelfPurchase,
	domain.ErrDepositNotAsking,
	domain.ErrAuctionNotInProgress,
	domain.ErrAuctionNotEnded,
	domain.ErrInsufficientStorage,
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if matchesAny(err, notFoundErrors) {
			status = http.StatusNotFound
		} else if matchesAny(err, preconditionErrors) {
			status = http.StatusBadRequest
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
