package profiles

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ffbanner/ffbanner/internal/freefire"
)

type AccountInfoProviderMock struct {
	mock.Mock
}

func (m *AccountInfoProviderMock) AccountInfo(ctx context.Context, uid string) (*freefire.Account, error) {
	args := m.Called(ctx, uid)
	var result *freefire.Account
	if casted, ok := args.Get(0).(*freefire.Account); ok {
		result = casted
	}

	return result, args.Error(1)
}

type AssetsProviderMock struct {
	mock.Mock
}

func (m *AssetsProviderMock) Fetch(ctx context.Context, assetId string) ([]byte, error) {
	args := m.Called(ctx, assetId)
	var result []byte
	if casted, ok := args.Get(0).([]byte); ok {
		result = casted
	}

	return result, args.Error(1)
}

type mockEmitter struct {
	mock.Mock
}

func (e *mockEmitter) Emit(name string, args ...interface{}) {
	e.Called(append([]interface{}{name}, args...)...)
}

type ProviderSuite struct {
	suite.Suite

	Provider *Provider

	AccountInfoProvider *AccountInfoProviderMock
	AssetsProvider      *AssetsProviderMock
	Emitter             *mockEmitter
}

func (t *ProviderSuite) SetupSubTest() {
	t.AccountInfoProvider = &AccountInfoProviderMock{}
	t.AssetsProvider = &AssetsProviderMock{}
	t.Emitter = &mockEmitter{}
	t.Provider = NewProvider(t.AccountInfoProvider, t.AssetsProvider, t.Emitter)
}

func (t *ProviderSuite) TearDownSubTest() {
	t.AccountInfoProvider.AssertExpectations(t.T())
	t.AssetsProvider.AssertExpectations(t.T())
	t.Emitter.AssertExpectations(t.T())
}

func (t *ProviderSuite) TestFindProfile() {
	level := 50

	t.Run("all assets are found", func() {
		ctx := context.Background()
		account := &freefire.Account{
			Level:    &level,
			Name:     "Hero",
			AvatarId: "999",
			BannerId: "888",
			PinId:    "777",
		}
		t.AccountInfoProvider.On("AccountInfo", ctx, "12345").Return(account, nil)
		t.AssetsProvider.On("Fetch", ctx, "999").Return([]byte("avatar"), nil)
		t.AssetsProvider.On("Fetch", ctx, "888").Return([]byte("banner"), nil)
		t.AssetsProvider.On("Fetch", ctx, "777").Return([]byte("pin"), nil)

		t.Emitter.On("Emit", "profiles:account_info", "12345", nil).Once()
		t.Emitter.On("Emit", "profiles:asset", AssetAvatar, "999", true, nil).Once()
		t.Emitter.On("Emit", "profiles:asset", AssetBanner, "888", true, nil).Once()
		t.Emitter.On("Emit", "profiles:asset", AssetPin, "777", true, nil).Once()

		profile, err := t.Provider.FindProfile(ctx, "12345")
		t.Require().NoError(err)
		t.Same(account, profile.Account)
		t.Equal([]byte("avatar"), profile.Avatar)
		t.Equal([]byte("banner"), profile.Banner)
		t.Equal([]byte("pin"), profile.Pin)
	})

	t.Run("pin is not requested when absent", func() {
		ctx := context.Background()
		account := &freefire.Account{
			Name:     "Hero",
			AvatarId: "999",
			BannerId: "888",
			PinId:    "0",
		}
		t.AccountInfoProvider.On("AccountInfo", ctx, "12345").Return(account, nil)
		t.AssetsProvider.On("Fetch", ctx, "999").Return([]byte("avatar"), nil)
		t.AssetsProvider.On("Fetch", ctx, "888").Return(nil, nil)

		t.Emitter.On("Emit", "profiles:account_info", "12345", nil).Once()
		t.Emitter.On("Emit", "profiles:asset", AssetAvatar, "999", true, nil).Once()
		t.Emitter.On("Emit", "profiles:asset", AssetBanner, "888", false, nil).Once()

		profile, err := t.Provider.FindProfile(ctx, "12345")
		t.Require().NoError(err)
		t.Equal([]byte("avatar"), profile.Avatar)
		t.Nil(profile.Banner)
		t.Nil(profile.Pin)
		t.AssetsProvider.AssertNotCalled(t.T(), "Fetch", ctx, "0")
	})

	t.Run("asset errors are absorbed", func() {
		ctx := context.Background()
		account := &freefire.Account{AvatarId: "999", BannerId: "888"}
		expectedErr := errors.New("mock error")
		t.AccountInfoProvider.On("AccountInfo", ctx, "12345").Return(account, nil)
		t.AssetsProvider.On("Fetch", ctx, "999").Return([]byte("partial"), expectedErr)
		t.AssetsProvider.On("Fetch", ctx, "888").Return([]byte("banner"), nil)

		t.Emitter.On("Emit", "profiles:account_info", "12345", nil).Once()
		t.Emitter.On("Emit", "profiles:asset", AssetAvatar, "999", false, expectedErr).Once()
		t.Emitter.On("Emit", "profiles:asset", AssetBanner, "888", true, nil).Once()

		profile, err := t.Provider.FindProfile(ctx, "12345")
		t.Require().NoError(err)
		t.Nil(profile.Avatar)
		t.Equal([]byte("banner"), profile.Banner)
	})

	t.Run("account info error", func() {
		ctx := context.Background()
		expectedErr := &freefire.UpstreamError{Status: 503}
		t.AccountInfoProvider.On("AccountInfo", ctx, "12345").Return(nil, expectedErr)
		t.Emitter.On("Emit", "profiles:account_info", "12345", expectedErr).Once()

		profile, err := t.Provider.FindProfile(ctx, "12345")
		t.Nil(profile)
		t.Same(expectedErr, err)
		t.AssetsProvider.AssertNotCalled(t.T(), "Fetch", mock.Anything, mock.Anything)
	})
}

func TestProvider(t *testing.T) {
	suite.Run(t, new(ProviderSuite))
}
