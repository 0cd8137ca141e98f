package onenote

import (
	"fmt"

	"onenotestore/internal/one"
	"onenotestore/internal/onestore"
)

func assemblePageSeries(obj *onestore.Object, space onestore.ObjectSpace, store *onestore.Store) (*PageSeries, error) {
	node, err := one.ParsePageSeriesNode(obj, space.Mapping())
	if err != nil {
		return nil, err
	}

	series := &PageSeries{}
	for _, pageSpaceID := range node.PageSpaces {
		if onestore.IsVersionObjectSpace(pageSpaceID) {
			continue
		}
		pageSpace, ok := store.ObjectSpaces[pageSpaceID]
		if !ok {
			return nil, fmt.Errorf("%w: page object space %s not present", onestore.ErrResolutionFailed, pageSpaceID)
		}
		page, err := assemblePage(pageSpace)
		if err != nil {
			return nil, err
		}
		series.Pages = append(series.Pages, *page)
	}
	return series, nil
}

func assemblePage(space onestore.ObjectSpace) (*Page, error) {
	contentRootRef := space.ContentRoot()
	if contentRootRef.IsNil() {
		return nil, fmt.Errorf("%w: page object space has no content root", onestore.ErrMalformedFileData)
	}
	manifestObj, err := childObject(space, contentRootRef)
	if err != nil {
		return nil, err
	}
	manifest, err := one.ParsePageManifestNode(manifestObj, space.Mapping())
	if err != nil {
		return nil, err
	}
	pageObj, err := childObject(space, manifest.Page)
	if err != nil {
		return nil, err
	}
	pageNode, err := one.ParsePageNode(pageObj, space.Mapping())
	if err != nil {
		return nil, err
	}

	elements, err := assembleElements(pageNode.Children, space)
	if err != nil {
		return nil, err
	}
	return &Page{Elements: elements}, nil
}
