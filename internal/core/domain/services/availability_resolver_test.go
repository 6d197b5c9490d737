package services_test

import (
	"testing"

	"shipping/internal/core/domain/model/binding"
	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createOffer(t *testing.T, deliveriesFrom []kernel.Alpha3, restriction *catalog.Restriction) services.Offer {
	t.Helper()
	currency, err := kernel.NewCurrency("USD")
	require.NoError(t, err)

	company, err := catalog.NewCompany("acme", "acme-label", "", currency, deliveriesFrom)
	require.NoError(t, err)

	pkg, err := catalog.NewPackage("standard", 100, 30, nil)
	require.NoError(t, err)

	companyPackage, err := catalog.NewCompanyPackage(company.ID(), pkg.ID(), currency)
	require.NoError(t, err)

	return services.Offer{
		CompanyPackage: companyPackage,
		Company:        company,
		Package:        pkg,
		Restriction:    restriction,
	}
}

func createRestriction(t *testing.T, maxSize, maxWeight float64, deliveriesTo ...kernel.Alpha3) *catalog.Restriction {
	t.Helper()
	restriction, err := catalog.NewRestriction("acme-standard", maxSize, maxWeight, deliveriesTo)
	require.NoError(t, err)
	return restriction
}

func createCandidate(t *testing.T, offer services.Offer, volume, weight float64) services.Candidate {
	t.Helper()
	measurements, err := kernel.NewDimensions(volume, weight)
	require.NoError(t, err)

	b, err := binding.NewBinding(42, 7, offer.CompanyPackage.ID(), measurements, nil)
	require.NoError(t, err)

	return services.Candidate{Binding: b, Offer: offer}
}

func TestOfferCeilings(t *testing.T) {
	t.Run("should use package ceilings without restriction", func(t *testing.T) {
		offer := createOffer(t, []kernel.Alpha3{"USA"}, nil)

		assert.InDelta(t, 100.0, offer.MaxSize(), 0.0001)
		assert.InDelta(t, 30.0, offer.MaxWeight(), 0.0001)
	})

	t.Run("should replace ceilings with restriction overrides", func(t *testing.T) {
		offer := createOffer(t, []kernel.Alpha3{"USA"}, createRestriction(t, 50, 20))

		assert.InDelta(t, 50.0, offer.MaxSize(), 0.0001)
		assert.InDelta(t, 20.0, offer.MaxWeight(), 0.0001)
	})
}

func TestOfferAdmitsDestination(t *testing.T) {
	t.Run("should admit everything without restriction", func(t *testing.T) {
		offer := createOffer(t, []kernel.Alpha3{"USA"}, nil)

		assert.True(t, offer.AdmitsDestination("MEX"))
	})

	t.Run("should defer to the restriction allow-list", func(t *testing.T) {
		offer := createOffer(t, []kernel.Alpha3{"USA"}, createRestriction(t, 50, 20, "CAN"))

		assert.True(t, offer.AdmitsDestination("CAN"))
		assert.False(t, offer.AdmitsDestination("MEX"))
	})
}

func TestEligible(t *testing.T) {
	resolver := services.NewAvailabilityResolver()

	t.Run("should match when all conditions hold", func(t *testing.T) {
		offer := createOffer(t, []kernel.Alpha3{"USA"}, nil)

		assert.True(t, resolver.Eligible(offer, "USA", "CAN", 80, 25))
	})

	t.Run("should reject origin outside the company's set", func(t *testing.T) {
		offer := createOffer(t, []kernel.Alpha3{"USA"}, nil)

		assert.False(t, resolver.Eligible(offer, "MEX", "CAN", 80, 25))
	})

	t.Run("should reject destination outside the allow-list", func(t *testing.T) {
		offer := createOffer(t, []kernel.Alpha3{"USA"}, createRestriction(t, 100, 30, "CAN"))

		assert.False(t, resolver.Eligible(offer, "USA", "MEX", 80, 25))
	})

	t.Run("should reject parcels over the effective ceilings", func(t *testing.T) {
		offer := createOffer(t, []kernel.Alpha3{"USA"}, createRestriction(t, 50, 20))

		// Fits the package defaults but not the restriction overrides.
		assert.False(t, resolver.Eligible(offer, "USA", "CAN", 80, 15))
		assert.False(t, resolver.Eligible(offer, "USA", "CAN", 40, 25))
		assert.True(t, resolver.Eligible(offer, "USA", "CAN", 40, 15))
	})
}

func TestFindFirstMatch(t *testing.T) {
	resolver := services.NewAvailabilityResolver()

	t.Run("should return the first candidate in order when several qualify", func(t *testing.T) {
		first := createCandidate(t, createOffer(t, []kernel.Alpha3{"USA"}, nil), 40, 10)
		second := createCandidate(t, createOffer(t, []kernel.Alpha3{"USA"}, nil), 40, 10)

		got, err := resolver.FindFirstMatch([]services.Candidate{first, second}, "CAN")
		require.NoError(t, err)
		assert.True(t, got.Binding.ID().IsEqual(first.Binding.ID()))

		// Reversing the input reverses the answer. Callers of the legacy
		// endpoints depend on this order sensitivity.
		got, err = resolver.FindFirstMatch([]services.Candidate{second, first}, "CAN")
		require.NoError(t, err)
		assert.True(t, got.Binding.ID().IsEqual(second.Binding.ID()))
	})

	t.Run("should skip candidates whose restriction excludes the destination", func(t *testing.T) {
		restricted := createCandidate(t,
			createOffer(t, []kernel.Alpha3{"USA"}, createRestriction(t, 100, 30, "CAN")), 40, 10)
		open := createCandidate(t, createOffer(t, []kernel.Alpha3{"USA"}, nil), 40, 10)

		got, err := resolver.FindFirstMatch([]services.Candidate{restricted, open}, "MEX")

		require.NoError(t, err)
		assert.True(t, got.Binding.ID().IsEqual(open.Binding.ID()))
	})

	t.Run("should check each binding against its own measurements", func(t *testing.T) {
		oversized := createCandidate(t, createOffer(t, []kernel.Alpha3{"USA"}, createRestriction(t, 50, 20)), 80, 15)
		fitting := createCandidate(t, createOffer(t, []kernel.Alpha3{"USA"}, nil), 80, 15)

		got, err := resolver.FindFirstMatch([]services.Candidate{oversized, fitting}, "CAN")

		require.NoError(t, err)
		assert.True(t, got.Binding.ID().IsEqual(fitting.Binding.ID()))
	})

	t.Run("should fail when nothing matches", func(t *testing.T) {
		restricted := createCandidate(t,
			createOffer(t, []kernel.Alpha3{"USA"}, createRestriction(t, 100, 30, "CAN")), 40, 10)

		_, err := resolver.FindFirstMatch([]services.Candidate{restricted}, "MEX")

		var notFound *errs.ObjectNotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("should fail on an unconstructed binding", func(t *testing.T) {
		offer := createOffer(t, []kernel.Alpha3{"USA"}, nil)

		_, err := resolver.FindFirstMatch([]services.Candidate{{Binding: nil, Offer: offer}}, "CAN")

		assert.ErrorIs(t, err, binding.ErrBindingIsNotConstructed)
	})
}

func TestResolveUnique(t *testing.T) {
	resolver := services.NewAvailabilityResolver()

	t.Run("should return the single eligible candidate", func(t *testing.T) {
		matching := createCandidate(t, createOffer(t, []kernel.Alpha3{"USA"}, nil), 40, 10)
		wrongOrigin := createCandidate(t, createOffer(t, []kernel.Alpha3{"MEX"}, nil), 40, 10)

		got, err := resolver.ResolveUnique(
			[]services.Candidate{wrongOrigin, matching}, "USA", "CAN", 40, 10)

		require.NoError(t, err)
		assert.True(t, got.Binding.ID().IsEqual(matching.Binding.ID()))
	})

	t.Run("should fail with not found when nothing is eligible", func(t *testing.T) {
		wrongOrigin := createCandidate(t, createOffer(t, []kernel.Alpha3{"MEX"}, nil), 40, 10)

		_, err := resolver.ResolveUnique(
			[]services.Candidate{wrongOrigin}, "USA", "CAN", 40, 10)

		var notFound *errs.ObjectNotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("should fail with ambiguous match when several are eligible", func(t *testing.T) {
		first := createCandidate(t, createOffer(t, []kernel.Alpha3{"USA"}, nil), 40, 10)
		second := createCandidate(t, createOffer(t, []kernel.Alpha3{"USA"}, nil), 40, 10)

		_, err := resolver.ResolveUnique(
			[]services.Candidate{first, second}, "USA", "CAN", 40, 10)

		var ambiguous *errs.AmbiguousMatchError
		assert.ErrorAs(t, err, &ambiguous)
	})

	t.Run("should use the requested dimensions rather than the binding's", func(t *testing.T) {
		// The binding declares a small parcel but the request is oversized.
		candidate := createCandidate(t, createOffer(t, []kernel.Alpha3{"USA"}, nil), 40, 10)

		_, err := resolver.ResolveUnique(
			[]services.Candidate{candidate}, "USA", "CAN", 400, 10)

		var notFound *errs.ObjectNotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestFilterByCapacity(t *testing.T) {
	resolver := services.NewAvailabilityResolver()

	t.Run("should keep offers fitting origin and capacity", func(t *testing.T) {
		fitting := createOffer(t, []kernel.Alpha3{"USA"}, nil)
		wrongOrigin := createOffer(t, []kernel.Alpha3{"MEX"}, nil)
		tooSmall := createOffer(t, []kernel.Alpha3{"USA"}, createRestriction(t, 10, 5))

		got := resolver.FilterByCapacity(
			[]services.Offer{fitting, wrongOrigin, tooSmall}, "USA", 40, 10)

		require.Len(t, got, 1)
		assert.True(t, got[0].CompanyPackage.ID().IsEqual(fitting.CompanyPackage.ID()))
	})

	t.Run("should ignore destination allow-lists", func(t *testing.T) {
		restricted := createOffer(t, []kernel.Alpha3{"USA"}, createRestriction(t, 100, 30, "CAN"))

		got := resolver.FilterByCapacity([]services.Offer{restricted}, "USA", 40, 10)

		assert.Len(t, got, 1)
	})

	t.Run("should sort ascending by company package id", func(t *testing.T) {
		offers := []services.Offer{
			createOffer(t, []kernel.Alpha3{"USA"}, nil),
			createOffer(t, []kernel.Alpha3{"USA"}, nil),
			createOffer(t, []kernel.Alpha3{"USA"}, nil),
		}

		got := resolver.FilterByCapacity(offers, "USA", 40, 10)

		require.Len(t, got, 3)
		for i := 1; i < len(got); i++ {
			assert.Less(t, got[i-1].CompanyPackage.ID().String(), got[i].CompanyPackage.ID().String())
		}
	})

	t.Run("should return empty slice when nothing fits", func(t *testing.T) {
		wrongOrigin := createOffer(t, []kernel.Alpha3{"MEX"}, nil)

		got := resolver.FilterByCapacity([]services.Offer{wrongOrigin}, "USA", 40, 10)

		assert.Empty(t, got)
	})
}
