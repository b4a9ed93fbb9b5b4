package invaders

// Stats tallies the events of one or more rounds.
type Stats struct {
	Ticks        int
	Rounds       int
	Won          int
	Lost         int
	Invaded      int
	Score        int
	BestScore    int
	AliensKilled int
	ExtrasKilled int
	ExtrasMissed int
	BlocksLost   int
	ShotsFired   int
	AlienShots   int
	LivesLost    int
}

// Record adds the events of one tick.
func (s *Stats) Record(events []Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case RoundStarted:
			s.Rounds++
			s.Score = 0
		case EntityCreated:
			switch e.Category {
			case CategoryPlayerLaser:
				s.ShotsFired++
			case CategoryAlienLaser:
				s.AlienShots++
			}
		case EntityDestroyed:
			switch {
			case e.Category == CategoryAlien:
				s.AliensKilled++
			case e.Category == CategoryBlock:
				s.BlocksLost++
			case e.Category == CategoryExtra && e.Cause == CauseCollision:
				s.ExtrasKilled++
			case e.Category == CategoryExtra:
				s.ExtrasMissed++
			}
		case ScoreChanged:
			s.Score = e.Total
			s.BestScore = max(s.BestScore, e.Total)
		case LifeLost:
			s.LivesLost++
		case RoundWon:
			s.Won++
		case RoundOver:
			s.Lost++
			if e.Invaded {
				s.Invaded++
			}
		}
	}
}
