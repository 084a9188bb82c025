// Package service holds business logic for CharterDesk trading entities.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/cargotype"
	"charterdesk.io/charterdesk/ent/company"
	"charterdesk.io/charterdesk/ent/contract"
	entfixture "charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/ent/negotiation"
	entorder "charterdesk.io/charterdesk/ent/order"
	entport "charterdesk.io/charterdesk/ent/port"
	"charterdesk.io/charterdesk/ent/recapmanager"
	entuser "charterdesk.io/charterdesk/ent/user"
	entvessel "charterdesk.io/charterdesk/ent/vessel"
)

// RecomputeFixtureDerived overwrites the fixture's last_updated and
// search_text columns from its current children. Missing fixture is a
// no-op, not an error. Lookup failures for optional related records are
// treated as absence so the rollup never aborts the triggering mutation.
//
// Callers invoke this at the end of every mutation that creates, updates,
// or changes the status of a contract or recap carrying a fixture id,
// passing the transactional client so the reads and the single write share
// the mutation's transaction. A negotiation-only edit is picked up on the
// next sibling trigger, not immediately.
func RecomputeFixtureDerived(ctx context.Context, client *ent.Client, fixtureID string) error {
	fx, err := client.Fixture.Query().
		Where(entfixture.IDEQ(fixtureID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("load fixture %s: %w", fixtureID, err)
	}

	contracts, err := client.Contract.Query().
		Where(contract.HasFixtureWith(entfixture.IDEQ(fixtureID))).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load fixture contracts: %w", err)
	}
	recaps, err := client.RecapManager.Query().
		Where(recapmanager.HasFixtureWith(entfixture.IDEQ(fixtureID))).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load fixture recaps: %w", err)
	}

	// Negotiations are read fresh each time through the order join.
	var negotiations []*ent.Negotiation
	ord, err := fx.QueryOrder().Only(ctx)
	if err == nil {
		negotiations, err = client.Negotiation.Query().
			Where(negotiation.HasOrderWith(entorder.IDEQ(ord.ID))).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load order negotiations: %w", err)
		}
	} else if !ent.IsNotFound(err) {
		return fmt.Errorf("load fixture order: %w", err)
	}

	lastUpdated := rollupLastUpdated(fx, contracts, recaps, negotiations)
	searchText := buildSearchText(ctx, client, fx, contracts, recaps, negotiations)

	if _, err := client.Fixture.UpdateOneID(fixtureID).
		SetLastUpdated(lastUpdated).
		SetSearchText(searchText).
		Save(ctx); err != nil {
		return fmt.Errorf("persist fixture derived fields: %w", err)
	}
	return nil
}

// rollupLastUpdated is the max over the fixture's own timestamps and every
// child's updated_at, falling back to created_at where updated_at is absent.
func rollupLastUpdated(fx *ent.Fixture, contracts []*ent.Contract, recaps []*ent.RecapManager, negotiations []*ent.Negotiation) time.Time {
	max := fx.CreatedAt
	bump := func(t time.Time) {
		if t.After(max) {
			max = t
		}
	}
	bump(fx.UpdatedAt)
	for _, c := range contracts {
		bump(latestOf(c.UpdatedAt, c.CreatedAt))
	}
	for _, r := range recaps {
		bump(latestOf(r.UpdatedAt, r.CreatedAt))
	}
	for _, n := range negotiations {
		bump(latestOf(n.UpdatedAt, n.CreatedAt))
	}
	return max
}

func latestOf(updated, created time.Time) time.Time {
	if updated.IsZero() {
		return created
	}
	return updated
}

// buildSearchText assembles the lowercase, space-joined, de-duplicated set
// of human-identifying strings reachable from the fixture. Deterministic
// (sorted) so recomputation without intervening writes is byte-identical.
func buildSearchText(ctx context.Context, client *ent.Client, fx *ent.Fixture, contracts []*ent.Contract, recaps []*ent.RecapManager, negotiations []*ent.Negotiation) string {
	tokens := newTokenSet()
	tokens.add(fx.FixtureNumber)

	vesselIDs := map[string]struct{}{}
	companyIDs := map[string]struct{}{}
	portIDs := map[string]struct{}{}
	cargoIDs := map[string]struct{}{}
	userIDs := map[string]struct{}{}

	collect := func(ids map[string]struct{}, id string) {
		if id != "" {
			ids[id] = struct{}{}
		}
	}

	for _, c := range contracts {
		tokens.add(c.CpNumber, c.ContractType, c.DeliveryType)
		collect(vesselIDs, c.VesselID)
		collect(companyIDs, c.CompanyID)
		collect(portIDs, c.LoadPortID)
		collect(portIDs, c.DischargePortID)
		collect(cargoIDs, c.CargoTypeID)
		collect(userIDs, c.CreatedBy)
	}
	for _, r := range recaps {
		tokens.add(r.RecapNumber, r.ContractType, r.DeliveryType)
		collect(vesselIDs, r.VesselID)
		collect(companyIDs, r.CompanyID)
		collect(portIDs, r.LoadPortID)
		collect(portIDs, r.DischargePortID)
		collect(cargoIDs, r.CargoTypeID)
		collect(userIDs, r.CreatedBy)
	}
	for _, n := range negotiations {
		tokens.add(n.NegotiationNumber, n.MarketIndex, n.DeliveryType)
		collect(vesselIDs, n.VesselID)
		collect(companyIDs, n.CompanyID)
		collect(userIDs, n.CreatedBy)
	}

	// Point lookups; a missing or failing lookup is skipped, never fatal.
	for id := range vesselIDs {
		if v, err := client.Vessel.Query().Where(entvessel.IDEQ(id)).Only(ctx); err == nil {
			tokens.add(v.Name, v.ImoNumber)
		}
	}
	for id := range companyIDs {
		if co, err := client.Company.Query().Where(company.IDEQ(id)).Only(ctx); err == nil {
			tokens.add(co.Name)
		}
	}
	for id := range portIDs {
		if p, err := client.Port.Query().Where(entport.IDEQ(id)).Only(ctx); err == nil {
			tokens.add(p.Name, p.Country)
		}
	}
	for id := range cargoIDs {
		if ct, err := client.CargoType.Query().Where(cargotype.IDEQ(id)).Only(ctx); err == nil {
			tokens.add(ct.Name)
		}
	}
	for id := range userIDs {
		if u, err := client.User.Query().Where(entuser.IDEQ(id)).Only(ctx); err == nil {
			tokens.add(u.Name)
		}
	}

	return tokens.join()
}

type tokenSet struct {
	seen map[string]struct{}
}

func newTokenSet() *tokenSet {
	return &tokenSet{seen: map[string]struct{}{}}
}

func (s *tokenSet) add(values ...string) {
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		s.seen[v] = struct{}{}
	}
}

func (s *tokenSet) join() string {
	out := make([]string, 0, len(s.seen))
	for v := range s.seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return strings.Join(out, " ")
}
