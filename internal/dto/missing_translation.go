package dto

// ListMissingTranslationsQuery 缺失翻译分页查询参数（GET /api/missing?page=1&size=10&locale=de）
type ListMissingTranslationsQuery struct {
	Page   int    `form:"page,default=1" binding:"min=1" msg:"Page must be a positive integer"`
	Size   int    `form:"size,default=10" binding:"min=1,max=100" msg:"Size must be between 1 and 100"`
	Locale string `form:"locale" binding:"omitempty,max=35" msg:"Locale is too long"`
}

// TranslateQuery 翻译预览参数（GET /api/translate?msgid=Hello&lang=de）
type TranslateQuery struct {
	MsgID string `form:"msgid" binding:"required,max=512" msg:"msgid is required"`
	Lang  string `form:"lang"`
}
