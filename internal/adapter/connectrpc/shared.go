package connectrpc

import "github.com/eslsoft/conjugator/internal/repository"

const (
	_defaultPageSize = 20
	_maxPageSize     = 1000
)

func convertPagination(pageNo, pageSize int32) repository.Pagination {
	if pageNo <= 0 {
		pageNo = 1
	}
	if pageSize <= 0 {
		pageSize = _defaultPageSize
	}
	if pageSize > _maxPageSize {
		pageSize = _maxPageSize
	}
	return repository.Pagination{PageNo: pageNo, PageSize: pageSize}
}
