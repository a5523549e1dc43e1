// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

// Adapters bundles the domain adapters that share one [Gateway].
type Adapters struct {
	Auth    AuthAdapter
	Users   UserAdapter
	Events  EventAdapter
	Friends FriendAdapter
	Images  ImageAdapter
}

func NewHTTPAdapters(gateway *Gateway) *Adapters {
	return &Adapters{
		Auth:    NewHTTPAuthAdapter(gateway),
		Users:   NewHTTPUserAdapter(gateway),
		Events:  NewHTTPEventAdapter(gateway),
		Friends: NewHTTPFriendAdapter(gateway),
		Images:  NewHTTPImageAdapter(gateway),
	}
}
