package dto

// ConvertRequest 坐标转换请求
type ConvertRequest struct {
	From string   `json:"from" validate:"required,coordsys" comment:"源坐标系"`
	To   string   `json:"to" validate:"required,coordsys" comment:"目标坐标系"`
	Lng  *float64 `json:"lng" validate:"required" comment:"经度"`
	Lat  *float64 `json:"lat" validate:"required" comment:"纬度"`
}

// ParseRequest 坐标文本识别请求
type ParseRequest struct {
	Text string `json:"text" validate:"required" comment:"坐标文本"`
}

// FormatRequest 坐标格式化请求
type FormatRequest struct {
	Lng            *float64 `json:"lng" validate:"required" comment:"经度"`
	Lat            *float64 `json:"lat" validate:"required" comment:"纬度"`
	FractionDigits *int     `json:"fraction_digits" validate:"omitempty,gte=0,lte=15" comment:"小数位数"`
}

// CoordinateDTO 带坐标系的坐标
type CoordinateDTO struct {
	System string  `json:"system" comment:"坐标系"`
	Lng    float64 `json:"lng" comment:"经度"`
	Lat    float64 `json:"lat" comment:"纬度"`
}

// ParseResultDTO 识别结果
type ParseResultDTO struct {
	Notation string  `json:"notation" comment:"记法"`
	Lng      float64 `json:"lng" comment:"经度"`
	Lat      float64 `json:"lat" comment:"纬度"`
}

// FormatResultDTO 格式化结果
type FormatResultDTO struct {
	Text string `json:"text" comment:"坐标文本"`
}
