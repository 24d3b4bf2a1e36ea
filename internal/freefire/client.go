package freefire

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	DefaultInfoUrl = "https://info-ob49.vercel.app/api/account"
	DefaultRegion  = "BD"
)

type Api struct {
	http    *http.Client
	infoUrl string
	region  string
}

func NewApi(
	http *http.Client,
	infoUrl string,
	region string,
) *Api {
	if infoUrl == "" {
		infoUrl = DefaultInfoUrl
	}

	if region == "" {
		region = DefaultRegion
	}

	return &Api{
		http,
		infoUrl,
		region,
	}
}

// AccountInfo requests the account information of the player with the given uid.
// Every failure, including transport ones, is reported as *UpstreamError.
func (c *Api) AccountInfo(ctx context.Context, uid string) (*Account, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.accountInfoUrl(uid), nil)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	response, err := c.http.Do(request)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil, &UpstreamError{Status: response.StatusCode}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &UpstreamError{Status: response.StatusCode, Err: err}
	}

	account, err := ParseAccount(body)
	if err != nil {
		return nil, &UpstreamError{Status: response.StatusCode, Err: fmt.Errorf("unable to parse account info: %w", err)}
	}

	return account, nil
}

func (c *Api) accountInfoUrl(uid string) string {
	query := url.Values{}
	query.Set("uid", uid)
	query.Set("region", c.region)

	return c.infoUrl + "?" + query.Encode()
}
