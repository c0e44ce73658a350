package pricing

import (
	"strings"

	"adspace_ops/internal/domain/entities"
)

// SingleSiteName keys the fallback group used when an estimate carries no
// rental anchor at all.
const SingleSiteName = "Single Site"

// SiteGroup is the derived partition of an estimate's line items belonging
// to one physical site. Groups are ordered by anchor discovery order;
// within a group: anchor first, then related items in document order, then
// orphan copies in document order.
type SiteGroup struct {
	SiteName string
	Items    []entities.LineItem
}

// SiteGroups is an ordered set of groups; order matters for document
// rendering, so this is a slice rather than a map.
type SiteGroups []SiteGroup

// Find returns the group with the given site name, or nil.
func (gs SiteGroups) Find(siteName string) *SiteGroup {
	for i := range gs {
		if gs[i].SiteName == siteName {
			return &gs[i]
		}
	}
	return nil
}

// GroupBySite partitions line items into per-site groups.
//
// An item belongs to an anchor when its SiteAnchorID matches the anchor's
// id. Legacy items without the explicit key fall back to the historical
// convention: the item id contains the anchor id as a substring. The
// fallback keeps grouping stable for estimates stored before the key
// existed, with its known weakness (overlapping ids misclassify) intact.
//
// Items attached to no anchor are orphans and are deep-copied into every
// group, so an edit against one group's copy cannot leak into another.
// With no anchors at all the whole input becomes one "Single Site" group;
// empty input yields that group empty.
func GroupBySite(items []entities.LineItem) SiteGroups {
	groups := SiteGroups{}
	grouped := make(map[string]bool, len(items))

	for _, item := range items {
		if !item.IsSiteAnchor() {
			continue
		}
		group := SiteGroup{SiteName: item.Description}
		group.Items = append(group.Items, item.Clone())
		grouped[item.ID] = true

		for _, candidate := range items {
			if candidate.ID == item.ID {
				continue
			}
			if !belongsToAnchor(candidate, item) {
				continue
			}
			group.Items = append(group.Items, candidate.Clone())
			grouped[candidate.ID] = true
		}
		groups = append(groups, group)
	}

	if len(groups) == 0 {
		all := make([]entities.LineItem, 0, len(items))
		for _, item := range items {
			all = append(all, item.Clone())
		}
		return SiteGroups{{SiteName: SingleSiteName, Items: all}}
	}

	for _, item := range items {
		if grouped[item.ID] {
			continue
		}
		for i := range groups {
			groups[i].Items = append(groups[i].Items, item.Clone())
		}
	}
	return groups
}

func belongsToAnchor(item, anchor entities.LineItem) bool {
	if item.SiteAnchorID != "" {
		return item.SiteAnchorID == anchor.ID
	}
	return strings.Contains(item.ID, anchor.ID)
}
