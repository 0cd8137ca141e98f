package one

import "onenotestore/internal/onestore"

// PictureContainer is a raster or XPS image payload attached to an
// ImageNode, plus its file extension when known.
type PictureContainer struct {
	Data         []byte
	Extension    string
	HasExtension bool
}

// ParsePictureContainer decodes a PictureContainer or XpsContainer object
// (MS-ONE 2.2.36); the two share a layout and only differ in jcid.
func ParsePictureContainer(obj *onestore.Object) (PictureContainer, error) {
	if err := requireJcid(obj, PropertySetPictureContainer, PropertySetXpsContainer); err != nil {
		return PictureContainer{}, err
	}

	pc := PictureContainer{Data: obj.FileData.Bytes()}
	if ext, ok := optionalUTF16String(obj.Props, PropFileExtension); ok {
		pc.Extension, pc.HasExtension = ext, true
	}
	return pc, nil
}
