package facades

import (
	"context"
	"errors"
	"testing"
	"time"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

type fakeExchangeClient struct {
	rates           map[string]float32
	rateForCurrency float32
	err             error
	lastRequest     *pb.CurrencyRequest
	deadline        time.Time
}

func (f *fakeExchangeClient) GetExchangeRates(ctx context.Context, _ *pb.Empty, opts ...grpc.CallOption) (*pb.ExchangeRatesResponse, error) {
	f.deadline, _ = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ExchangeRatesResponse{Rates: f.rates}, nil
}

func (f *fakeExchangeClient) GetExchangeRateForCurrency(ctx context.Context, req *pb.CurrencyRequest, opts ...grpc.CallOption) (*pb.ExchangeRateResponse, error) {
	f.deadline, _ = ctx.Deadline()
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ExchangeRateResponse{FromCurrency: req.FromCurrency, ToCurrency: req.ToCurrency, Rate: f.rateForCurrency}, nil
}

func TestGetExchangeRates(t *testing.T) {
	client := &fakeExchangeClient{
		rates: map[string]float32{
			"USD": 1.0,
			"eur": 0.9,
			"XXX": 0,
		},
	}
	facade := NewExchangerFacade(client)

	rates, err := facade.GetExchangeRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]float32{"USD": 1.0, "EUR": 0.9}, rates)
	assert.False(t, client.deadline.IsZero(), "call should carry a deadline")
}

func TestGetExchangeRates_Error(t *testing.T) {
	client := &fakeExchangeClient{err: errors.New("grpc error")}
	facade := NewExchangerFacade(client)

	rates, err := facade.GetExchangeRates(context.Background())
	assert.Error(t, err)
	assert.Nil(t, rates)
}

func TestGetExchangeRateForCurrency(t *testing.T) {
	client := &fakeExchangeClient{rateForCurrency: 1.2}
	facade := NewExchangerFacade(client, WithTimeout(time.Minute))

	before := time.Now()
	rate, err := facade.GetExchangeRateForCurrency(context.Background(), "usd", "eur")
	require.NoError(t, err)
	assert.Equal(t, float32(1.2), rate)
	assert.Equal(t, "USD", client.lastRequest.FromCurrency)
	assert.Equal(t, "EUR", client.lastRequest.ToCurrency)
	assert.True(t, client.deadline.After(before.Add(59*time.Second)))
}

func TestGetExchangeRateForCurrency_Error(t *testing.T) {
	client := &fakeExchangeClient{err: errors.New("grpc error")}
	facade := NewExchangerFacade(client)

	rate, err := facade.GetExchangeRateForCurrency(context.Background(), "USD", "EUR")
	assert.Error(t, err)
	assert.Equal(t, float32(0), rate)
}

func TestDial(t *testing.T) {
	conn, err := Dial("localhost:50051")
	require.NoError(t, err)
	assert.NoError(t, conn.Close())
}
