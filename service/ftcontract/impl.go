package ftcontract

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

func (c *client) Transfer(ctx bCtx.Ctx, req *TransferReq) error {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/contracts/%s/ft-transfer", c.baseUrl, req.Asset)

	payload, err := json.Marshal(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("json.Marshal failed")
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(bearerKey, c.apikey)

	resp, err := c.client.Do(httpReq)
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
