package facades

import (
	"context"
	"strings"
	"time"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/sbilibin2017/spotbnb/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DefaultTimeout bounds a single call to the exchanger.
const DefaultTimeout = 3 * time.Second

// ExchangerFacade reads currency rates from the gw-exchanger gRPC service.
type ExchangerFacade struct {
	client  pb.ExchangeServiceClient
	timeout time.Duration
}

// Option configures an ExchangerFacade.
type Option func(*ExchangerFacade)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *ExchangerFacade) {
		f.timeout = d
	}
}

// NewExchangerFacade wraps an exchanger client.
func NewExchangerFacade(client pb.ExchangeServiceClient, opts ...Option) *ExchangerFacade {
	f := &ExchangerFacade{client: client, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Dial opens a plaintext connection to the exchanger at addr.
func Dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

// GetExchangeRates returns every rate the exchanger knows, keyed by upper-case currency code.
// Rates that are not positive are dropped.
func (f *ExchangerFacade) GetExchangeRates(ctx context.Context) (map[string]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, err
	}

	rates := make(map[string]float32, len(resp.Rates))
	for currency, rate := range resp.Rates {
		if rate <= 0 {
			continue
		}
		rates[strings.ToUpper(currency)] = rate
	}
	return rates, nil
}

// GetExchangeRateForCurrency returns how many units of toCurrency one unit of fromCurrency buys.
func (f *ExchangerFacade) GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float32, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req := &pb.CurrencyRequest{
		FromCurrency: strings.ToUpper(fromCurrency),
		ToCurrency:   strings.ToUpper(toCurrency),
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to fetch exchange rate via gRPC",
			"from", req.FromCurrency, "to", req.ToCurrency, "error", err)
		return 0, err
	}
	return resp.Rate, nil
}
