package bot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"schedule-bot/internal/models"
	"schedule-bot/internal/repository/chat"
	"schedule-bot/internal/repository/repotest"
	"schedule-bot/internal/repository/schedule"
	"schedule-bot/internal/repository/subject"
	chat_service "schedule-bot/internal/service/chat"
	schedule_service "schedule-bot/internal/service/schedule"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func (f *fakeSender) last(t *testing.T) tgbotapi.MessageConfig {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.sent)
	return f.sent[len(f.sent)-1]
}

const testChat = int64(555)

// среда, 14.10.2026, 11:00 по Киеву
var wednesday = time.Date(2026, time.October, 14, 11, 0, 0, 0, schedule_service.Kyiv)

func newTestBot(t *testing.T) (*Bot, *fakeSender) {
	t.Helper()
	ctx := context.Background()
	db := repotest.NewDB(t)

	subjects := subject.NewSubjectRepository(db)
	entries := schedule.NewScheduleRepository(db)
	require.NoError(t, subjects.Insert(ctx, &models.Subject{ID: 1, Title: "Math (adv.)", Group: models.K25}))
	require.NoError(t, subjects.Insert(ctx, &models.Subject{ID: 2, Title: "Physics", Group: models.K25}))
	require.NoError(t, entries.Insert(ctx, &models.ScheduleEntry{SubjectID: 1, Weekday: models.Wed, Parity: models.Both, Slot: models.SlotII}))
	require.NoError(t, entries.Insert(ctx, &models.ScheduleEntry{SubjectID: 2, Weekday: models.Wed, Parity: models.Even, Slot: models.SlotII}))

	chats := chat.NewChatRepository(db)
	log := zap.NewNop()
	sender := &fakeSender{}
	b := newBot(sender,
		schedule_service.NewScheduleService(subjects, chats, log),
		chat_service.NewChatService(chats),
		log,
	)
	return b, sender
}

func command(text string) *tgbotapi.Message {
	length := len(text)
	for i, r := range text {
		if r == ' ' {
			length = i
			break
		}
	}
	return &tgbotapi.Message{
		Chat:     &tgbotapi.Chat{ID: testChat},
		Text:     text,
		Date:     int(wednesday.Unix()),
		Entities: &[]tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}},
	}
}

func text(s string) *tgbotapi.Message {
	return &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: testChat}, Text: s, Date: int(wednesday.Unix())}
}

func TestParseSubjectArgs(t *testing.T) {
	cases := []struct {
		args       string
		slot, date string
		err        error
	}{
		{"", "", "", nil},
		{"   ", "", "", nil},
		{"2", "2", "", nil},
		{"II 14.10.2026", "II", "14.10.2026", nil},
		{"_ 14.10.2026", "", "14.10.2026", nil},
		{"_", "_", "", nil},
		{"1 2 3", "", "", errTooManyArgs},
	}

	for _, tc := range cases {
		slot, date, err := parseSubjectArgs(tc.args)
		assert.Equal(t, tc.slot, slot, tc.args)
		assert.Equal(t, tc.date, date, tc.args)
		assert.Equal(t, tc.err, err, tc.args)
	}
}

func TestSubject_NoGroupConfigured(t *testing.T) {
	b, sender := newTestBot(t)

	b.handleMessage(context.Background(), command("/subject"))
	assert.Equal(t, textNoGroup, sender.last(t).Text)
}

func TestConfigThenSubject(t *testing.T) {
	ctx := context.Background()
	b, sender := newTestBot(t)

	b.handleMessage(ctx, command("/config K-25"))
	assert.Equal(t, "Group set: K-25.", sender.last(t).Text)

	// 14-е - вторая неделя, Odd: только Math (Both)
	b.handleMessage(ctx, command("/subject"))
	msg := sender.last(t)
	assert.Equal(t, parseModeMarkdownV2, msg.ParseMode)
	assert.Equal(t, "2️⃣ Math \\(adv\\.\\)\n", msg.Text)

	// 21.10 - третья неделя, Even: Math и Physics
	b.handleMessage(ctx, command("/subject _ 21.10.2026"))
	assert.Equal(t, "2️⃣ Math \\(adv\\.\\)\n2️⃣ Physics\n", sender.last(t).Text)

	b.handleMessage(ctx, command("/subject 4"))
	assert.Equal(t, textNotFound, sender.last(t).Text)
}

func TestSubject_InputErrors(t *testing.T) {
	ctx := context.Background()
	b, sender := newTestBot(t)
	b.handleMessage(ctx, command("/config K-25"))

	b.handleMessage(ctx, command("/subject 9"))
	assert.Equal(t, "Invalid slot: 9.", sender.last(t).Text)

	b.handleMessage(ctx, command("/subject 1 2026-10-14"))
	assert.Equal(t, "Invalid date: 2026-10-14.", sender.last(t).Text)

	b.handleMessage(ctx, command("/subject 1 17.10.2026"))
	assert.Equal(t, "Invalid weekday: Sat.", sender.last(t).Text)

	b.handleMessage(ctx, command("/subject 1 2 3"))
	assert.Equal(t, textTooManyArgs, sender.last(t).Text)

	b.handleMessage(ctx, command("/config K-99"))
	assert.Equal(t, "Invalid group: K-99.", sender.last(t).Text)
}

func TestConfig_Keyboard(t *testing.T) {
	ctx := context.Background()
	b, sender := newTestBot(t)

	b.handleMessage(ctx, command("/config"))
	msg := sender.last(t)
	assert.Equal(t, textChooseGroup, msg.Text)
	assert.IsType(t, tgbotapi.ReplyKeyboardMarkup{}, msg.ReplyMarkup)
	assert.Equal(t, StateSelectingGroup, b.sessionState(testChat))

	b.handleMessage(ctx, text("K-25"))
	assert.Equal(t, "Group set: K-25.", sender.last(t).Text)
	assert.Equal(t, StateDefault, b.sessionState(testChat))

	b.handleMessage(ctx, command("/config"))
	b.handleMessage(ctx, text(cancelButton))
	assert.Equal(t, textCancelled, sender.last(t).Text)
}

func TestConfig_CommandAbortsSelection(t *testing.T) {
	ctx := context.Background()
	b, sender := newTestBot(t)

	b.handleMessage(ctx, command("/config"))
	require.Equal(t, StateSelectingGroup, b.sessionState(testChat))

	b.handleMessage(ctx, command("/subject"))
	assert.Equal(t, StateDefault, b.sessionState(testChat))
	assert.Equal(t, textNoGroup, sender.last(t).Text)

	sent := len(sender.sent)
	b.handleMessage(ctx, text("hi"))
	assert.Len(t, sender.sent, sent)
}

func TestHandleError_Generic(t *testing.T) {
	b, sender := newTestBot(t)

	b.handleError(testChat, "op", errors.New("db is down"))
	assert.Equal(t, textSomethingWrong, sender.last(t).Text)
}

func TestHelp(t *testing.T) {
	b, sender := newTestBot(t)

	b.handleMessage(context.Background(), command("/start"))
	assert.Contains(t, sender.last(t).Text, "/subject")
	assert.Contains(t, sender.last(t).Text, "/config")
}

func TestRenderSubject_WithMeetings(t *testing.T) {
	got := renderSubject(models.SubjectView{
		Slot:  models.SlotIII,
		Title: "Lab_1",
		Meetings: []models.Meeting{
			{Name: "Dr. Who", Link: "https://meet.example/x_(y)"},
			{Name: "TA"},
		},
	})
	want := "3️⃣ Lab\\_1\n🧑‍🏫 [Dr\\. Who](https://meet.example/x_(y\\))\n🧑‍🏫 TA"
	assert.Equal(t, want, got)
}
