package action

// Kind identifies one update command in the closed command set. The values
// match the platform's action names on the wire.
type Kind string

const (
	KindChangeName           Kind = "changeName"
	KindSetDescription       Kind = "setDescription"
	KindChangeSlug           Kind = "changeSlug"
	KindSetSearchKeywords    Kind = "setSearchKeywords"
	KindSetMetaTitle         Kind = "setMetaTitle"
	KindSetMetaDescription   Kind = "setMetaDescription"
	KindSetMetaKeywords      Kind = "setMetaKeywords"
	KindSetTaxCategory       Kind = "setTaxCategory"
	KindTransitionState      Kind = "transitionState"
	KindAddToCategory        Kind = "addToCategory"
	KindRemoveFromCategory   Kind = "removeFromCategory"
	KindSetCategoryOrderHint Kind = "setCategoryOrderHint"

	KindAddVariant          Kind = "addVariant"
	KindRemoveVariant       Kind = "removeVariant"
	KindChangeMasterVariant Kind = "changeMasterVariant"
	KindSetSku              Kind = "setSku"

	KindSetAttribute              Kind = "setAttribute"
	KindSetAttributeInAllVariants Kind = "setAttributeInAllVariants"

	KindAddPrice            Kind = "addPrice"
	KindRemovePrice         Kind = "removePrice"
	KindChangePrice         Kind = "changePrice"
	KindSetPriceCustomType  Kind = "setPriceCustomType"
	KindSetPriceCustomField Kind = "setPriceCustomField"

	KindAddExternalImage    Kind = "addExternalImage"
	KindRemoveImage         Kind = "removeImage"
	KindMoveImageToPosition Kind = "moveImageToPosition"

	KindAddAsset            Kind = "addAsset"
	KindRemoveAsset         Kind = "removeAsset"
	KindChangeAssetName     Kind = "changeAssetName"
	KindSetAssetDescription Kind = "setAssetDescription"
	KindSetAssetTags        Kind = "setAssetTags"
	KindSetAssetSources     Kind = "setAssetSources"
	KindSetAssetCustomType  Kind = "setAssetCustomType"
	KindSetAssetCustomField Kind = "setAssetCustomField"

	KindPublish   Kind = "publish"
	KindUnpublish Kind = "unpublish"
)
