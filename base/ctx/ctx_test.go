package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "requestId", "req-1")
	ts.Equal("req-1", ctx.Value("requestId"))
}

func (ts *testsuite) TestWithValues() {
	bg := Background()
	ctx := WithValues(bg, map[string]interface{}{
		"contract": "nft.host",
		"tokenId":  "42",
	})
	ts.Equal("nft.host", ctx.Value("contract"))
	ts.Equal("42", ctx.Value("tokenId"))
}

func (ts *testsuite) TestTimeout() {
	bg := Background()
	ctx, cancel := WithTimeout(bg, 10*time.Millisecond)
	defer cancel()
	expired := func(ctx context.Context) bool {
		select {
		case <-ctx.Done():
			return true
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}
	ts.True(expired(ctx))
	ts.Equal("context deadline exceeded", ctx.Err().Error())
}
