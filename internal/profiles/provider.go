package profiles

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ffbanner/ffbanner/internal/assets"
	"github.com/ffbanner/ffbanner/internal/freefire"
)

type Emitter interface {
	Emit(name string, args ...interface{})
}

type AccountInfoProvider interface {
	AccountInfo(ctx context.Context, uid string) (*freefire.Account, error)
}

type AssetsProvider interface {
	Fetch(ctx context.Context, assetId string) ([]byte, error)
}

const (
	AssetAvatar = "avatar"
	AssetBanner = "banner"
	AssetPin    = "pin"
)

// Profile holds everything needed to render a banner of the player.
// Missing assets are represented by nil slices.
type Profile struct {
	Account *freefire.Account
	Avatar  []byte
	Banner  []byte
	Pin     []byte
}

func NewProvider(
	accountInfoProvider AccountInfoProvider,
	assetsProvider AssetsProvider,
	emitter Emitter,
) *Provider {
	return &Provider{
		AccountInfoProvider: accountInfoProvider,
		AssetsProvider:      assetsProvider,
		Emitter:             emitter,
	}
}

type Provider struct {
	AccountInfoProvider
	AssetsProvider
	Emitter
}

// FindProfile fails only when the account information can't be retrieved.
// Assets that can't be downloaded are silently left empty.
func (p *Provider) FindProfile(ctx context.Context, uid string) (*Profile, error) {
	account, err := p.AccountInfo(ctx, uid)
	p.Emit("profiles:account_info", uid, err)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		Account: account,
	}

	var group errgroup.Group
	group.Go(p.assetFetcher(ctx, AssetAvatar, account.AvatarId, &profile.Avatar))
	group.Go(p.assetFetcher(ctx, AssetBanner, account.BannerId, &profile.Banner))
	if assets.IsPresent(account.PinId) {
		group.Go(p.assetFetcher(ctx, AssetPin, account.PinId, &profile.Pin))
	}

	// Fetchers never return an error
	_ = group.Wait()

	return profile, nil
}

func (p *Provider) assetFetcher(ctx context.Context, kind string, assetId string, dst *[]byte) func() error {
	return func() error {
		content, err := p.AssetsProvider.Fetch(ctx, assetId)
		if err != nil {
			content = nil
		}

		p.Emit("profiles:asset", kind, assetId, content != nil, err)
		*dst = content

		return nil
	}
}
