package mapper

import (
	"projectmanager/internal/adapter/api/dto"
	"projectmanager/internal/core/domain"
)

func ToUser(item dto.UserItem) domain.User {
	return domain.User{
		ID:    item.ID,
		Email: item.Email,
		Name:  item.Name,
	}
}

func ToUserItem(account domain.UserAccount) dto.UserItem {
	return dto.UserItem{
		ID:       account.ID,
		Email:    account.Email,
		Name:     account.Name,
		Password: account.Password,
	}
}

func ToUserItems(accounts []domain.UserAccount) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(accounts))
	for _, account := range accounts {
		items = append(items, ToUserItem(account))
	}
	return items
}

func ToRegisterRequest(reg domain.Registration) dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     reg.Name,
		Email:    reg.Email,
		Password: reg.Password,
	}
}
