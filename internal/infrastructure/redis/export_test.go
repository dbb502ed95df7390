package redis

// ReleaseLockScript はリース解放スクリプトの実体をテストから参照するための別名
const ReleaseLockScript = releaseLockScript
