package onenote

import (
	"onenotestore/internal/one"
	"onenotestore/internal/onestore"
)

func assembleSection(root *onestore.Object, space onestore.ObjectSpace, store *onestore.Store) (*Section, error) {
	node, err := one.ParseSectionNode(root, space.Mapping())
	if err != nil {
		return nil, err
	}

	sec := &Section{EntityGuid: node.EntityGuid.String(), CreatedAt: node.CreatedAt}

	if meta, err := assembleSectionMetadata(root, space); err != nil {
		return nil, err
	} else if meta != nil {
		sec.DisplayName, sec.HasName = meta.displayName, meta.hasDisplayName
		sec.Color = meta.color
	}

	for _, seriesRef := range node.PageSeries {
		seriesObj, err := childObject(space, seriesRef)
		if err != nil {
			return nil, err
		}
		series, err := assemblePageSeries(seriesObj, space, store)
		if err != nil {
			return nil, err
		}
		sec.PageSeries = append(sec.PageSeries, *series)
	}

	return sec, nil
}

type sectionMetadata struct {
	displayName    string
	hasDisplayName bool
	color          *one.Color
}

// assembleSectionMetadata looks for a SectionMetadataNode among the
// section's metadata objects. Real section files attach it as the object
// space's metadata root; absence is tolerated since display name and
// color are both cosmetic.
func assembleSectionMetadata(root *onestore.Object, space onestore.ObjectSpace) (*sectionMetadata, error) {
	metaRef := space.MetadataRoot()
	if metaRef.IsNil() {
		return nil, nil
	}
	metaObj, ok := space.GetObject(metaRef)
	if !ok {
		return nil, nil
	}
	if one.JcidOf(metaObj.Jcid) != one.PropertySetSectionMetadataNode {
		return nil, nil
	}
	md, err := one.ParseSectionMetadataNode(metaObj)
	if err != nil {
		return nil, err
	}
	out := &sectionMetadata{displayName: md.DisplayName, hasDisplayName: md.HasDisplayName}
	if md.HasColor {
		c := md.Color
		out.color = &c
	}
	return out, nil
}
