package services

import (
	"turatti/internal/domain"
	"turatti/internal/repos"
)

// SiteService serves the presentation tables used by headers, footers and the
// banner carousel.
type SiteService struct {
	Site *repos.SiteRepo
}

func NewSiteService(site *repos.SiteRepo) *SiteService { return &SiteService{Site: site} }

func (s *SiteService) ListBanners(active bool) ([]domain.Banner, error) {
	banners, err := s.Site.ListBanners(active)
	if err != nil {
		return nil, err
	}
	if banners == nil {
		banners = []domain.Banner{}
	}
	return banners, nil
}

func (s *SiteService) ListSocialLinks() ([]domain.SocialLink, error) {
	links, err := s.Site.ListSocialLinks()
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = []domain.SocialLink{}
	}
	return links, nil
}

func (s *SiteService) ListLogos(variant, placement string) ([]domain.Logo, error) {
	logos, err := s.Site.ListLogos(variant, placement)
	if err != nil {
		return nil, err
	}
	if logos == nil {
		logos = []domain.Logo{}
	}
	return logos, nil
}
