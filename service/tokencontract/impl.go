package tokencontract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	bCtx "github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/log"
)

const (
	bearerKey = "client-id"
)

type client struct {
	client  http.Client
	timeout time.Duration
	baseUrl string
	apikey  string
}

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		baseUrl: cfg.BaseUrl,
		apikey:  cfg.Apikey,
	}
}

func (c *client) TransferPayout(ctx bCtx.Ctx, req *TransferPayoutReq) error {
	url := fmt.Sprintf("%s/contracts/%s/nft-transfer-payout", c.baseUrl, req.Contract)
	return c.post(ctx, url, req)
}

func (c *client) Mint(ctx bCtx.Ctx, req *MintReq) error {
	url := fmt.Sprintf("%s/contracts/%s/nft-mint-payout", c.baseUrl, req.Contract)
	return c.post(ctx, url, req)
}

func (c *client) post(ctx bCtx.Ctx, url string, body interface{}) error {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("json.Marshal failed")
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(bearerKey, c.apikey)

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return ErrStatusCodeNotOk
	}
	return nil
}
