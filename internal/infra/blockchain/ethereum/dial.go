package ethereum

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// Closer releases a dialed connection.
type Closer func()

// Dial connects to the node at endpoint and binds the contract at address.
//
// HTTP(S) endpoints go through httpClient and poll for events. WebSocket and
// IPC endpoints use eth_subscribe. opts are applied after that default.
func Dial(ctx context.Context, endpoint string, httpClient *http.Client, address common.Address, opts ...Option) (*wavePortal, Closer, error) {
	var clientOpts []rpc.ClientOption
	if httpClient != nil {
		clientOpts = append(clientOpts, rpc.WithHTTPClient(httpClient))
	}

	rpcClient, err := rpc.DialOptions(ctx, endpoint, clientOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}

	opts = append([]Option{WithSubscriptions(supportsSubscriptions(endpoint))}, opts...)
	return New(ethclient.NewClient(rpcClient), address, opts...), rpcClient.Close, nil
}

// supportsSubscriptions reports whether the transport selected for endpoint
// can deliver notifications. Anything that is not a URL is an IPC path.
func supportsSubscriptions(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return true
	}

	switch u.Scheme {
	case "http", "https":
		return false
	default:
		return true
	}
}
