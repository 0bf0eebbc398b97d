package service

func (s *ApplicationService) SetKeyGenerator(f func() string) {
	s.newKey = f
}
